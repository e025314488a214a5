package render

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"walletScope/internal/model"
)

// TableSink renders views as human-readable tables.
type TableSink struct {
	out io.Writer
}

func NewTableSink(out io.Writer) *TableSink {
	if out == nil {
		out = os.Stdout
	}
	return &TableSink{out: out}
}

func (s *TableSink) WriteView(view model.WalletView) error {
	w := bufio.NewWriter(s.out)

	fmt.Fprintf(w, "Holdings for address %s on %s\n", view.Address, view.Network)

	if failure := sectionFailure(view, "balances"); failure != "" {
		fmt.Fprintf(w, "Balances unavailable: %s\n", failure)
	} else if len(view.Coins) == 0 {
		fmt.Fprintln(w, "No balances found for this address.")
	} else {
		writeHoldings(w, view.Coins)
	}

	if failure := sectionFailure(view, "activity"); failure != "" {
		fmt.Fprintf(w, "Recent activity unavailable: %s\n", failure)
	}

	if failure := sectionFailure(view, "positions"); failure != "" {
		fmt.Fprintf(w, "Protocol positions unavailable: %s\n", failure)
	} else {
		writeProtocols(w, view.Protocols)
	}

	fmt.Fprintf(w, "Total coins: %d\n", len(view.Coins))
	return w.Flush()
}

func writeHoldings(w io.Writer, coins []model.CoinActivity) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Symbol", "Balance", "Coin Type"})
	for _, coin := range coins {
		t.AppendRow(table.Row{
			coin.Balance.Metadata.DisplaySymbol(),
			coin.Balance.Display,
			coin.Balance.CoinType,
		})
	}
	t.Render()

	for _, coin := range coins {
		if len(coin.Activity.Entries) == 0 {
			continue
		}
		fmt.Fprintf(w, "Recent activity for %s:\n", coin.Balance.Metadata.DisplaySymbol())

		at := table.NewWriter()
		at.SetOutputMirror(w)
		at.AppendHeader(table.Row{"Time", "Amount", "Direction", "Tx"})
		for _, entry := range coin.Activity.Entries {
			at.AppendRow(table.Row{
				formatTimestamp(entry.Event.TimestampMs),
				entry.DisplayDelta,
				direction(entry.Event.Delta),
				entry.Event.Digest,
			})
		}
		at.Render()
	}
}

func writeProtocols(w io.Writer, cards []model.ProtocolCard) {
	for _, card := range cards {
		fmt.Fprintf(w, "%s positions:\n", card.Protocol)

		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.AppendHeader(table.Row{"Object", "Details"})
		for _, position := range card.Positions {
			t.AppendRow(table.Row{position.ObjectID, formatFields(position.Fields)})
		}
		t.Render()
	}
}

func formatFields(fields []model.PositionField) string {
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field.Label+"="+field.Value)
	}
	return strings.Join(parts, ", ")
}

// formatTimestamp renders a millisecond timestamp in UTC. Zero means the
// node did not report one.
func formatTimestamp(ms int64) string {
	if ms <= 0 {
		return "unknown time"
	}
	return time.UnixMilli(ms).UTC().Format("2006-01-02 15:04:05 UTC")
}

func direction(delta *big.Int) string {
	if delta != nil && delta.Sign() > 0 {
		return "received"
	}
	return "sent"
}

func sectionFailure(view model.WalletView, section string) string {
	for _, failure := range view.Failures {
		if failure.Section == section {
			return failure.Error
		}
	}
	return ""
}
