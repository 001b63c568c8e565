package scene

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// ConnectionStatus describes the connection state of a plug as a closed set
// of named states: a plug has a source, has destinations, has both, or has
// neither.
//
// Use the predicate methods to test for one side of the state without
// caring about the other.
type ConnectionStatus uint8

const (
	// StatusDisconnected: the plug has no source and no destinations.
	StatusDisconnected ConnectionStatus = iota
	// StatusSource: the plug has a source but no destinations.
	StatusSource
	// StatusDestinations: the plug has destinations but no source.
	StatusDestinations
	// StatusBoth: the plug has a source and destinations.
	StatusBoth
)

// HasSource is true if the plug is the destination of a connection.
func (s ConnectionStatus) HasSource() bool {
	return s == StatusSource || s == StatusBoth
}

// HasDestinations is true if the plug is the source of at least one
// connection.
func (s ConnectionStatus) HasDestinations() bool {
	return s == StatusDestinations || s == StatusBoth
}

// Connected is true if the plug has any connection at all.
func (s ConnectionStatus) Connected() bool {
	return s != StatusDisconnected
}

func (s ConnectionStatus) String() string {
	switch s {
	case StatusSource:
		return "source"
	case StatusDestinations:
		return "destinations"
	case StatusBoth:
		return "source+destinations"
	}
	return "disconnected"
}
