// Package render delivers assembled wallet views to output sinks.
package render

import "walletScope/internal/model"

// Sink receives one assembled view per lookup.
type Sink interface {
	WriteView(view model.WalletView) error
}

// Multi fans each view out to every sink in order, stopping at the first
// failure.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

type multiSink []Sink

func (m multiSink) WriteView(view model.WalletView) error {
	for _, sink := range m {
		if err := sink.WriteView(view); err != nil {
			return err
		}
	}
	return nil
}
