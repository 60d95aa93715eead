package desk

import "fmt"

// OSCNaming holds the address fragments the remote-control surface
// listens on. Every fragment can be overridden from the config file so a
// desk can coexist with other OSC gear on the same network.
type OSCNaming struct {
	MasterVolume   string `yaml:"master_volume"`
	MasterDimmer   string `yaml:"master_dimmer"`
	ExecutorPrefix string `yaml:"executor_prefix"`
	ExecutorDimmer string `yaml:"executor_dimmer"`
	ExecutorGo     string `yaml:"executor_go"`
	ExecutorGoBack string `yaml:"executor_go_back"`
}

// DefaultNaming returns the stock address layout:
//
//	/MasterVolume
//	/MasterDMX
//	/Executor1/Dimmer ... /Executor{n}/Dimmer
//	/Executor1/Go     ... /Executor{n}/Go
//	/Executor1/GoBack ... /Executor{n}/GoBack
func DefaultNaming() OSCNaming {
	return OSCNaming{
		MasterVolume:   "/MasterVolume",
		MasterDimmer:   "/MasterDMX",
		ExecutorPrefix: "/Executor",
		ExecutorDimmer: "/Dimmer",
		ExecutorGo:     "/Go",
		ExecutorGoBack: "/GoBack",
	}
}

// ExecutorDimmerAddress builds the fader address for a 1-based executor
// number, e.g. "/Executor3/Dimmer".
func (n OSCNaming) ExecutorDimmerAddress(number int) string {
	return fmt.Sprintf("%s%d%s", n.ExecutorPrefix, number, n.ExecutorDimmer)
}

// ExecutorGoAddress builds the go-button address for a 1-based executor
// number, e.g. "/Executor3/Go".
func (n OSCNaming) ExecutorGoAddress(number int) string {
	return fmt.Sprintf("%s%d%s", n.ExecutorPrefix, number, n.ExecutorGo)
}

// ExecutorGoBackAddress builds the go-back address for a 1-based
// executor number, e.g. "/Executor3/GoBack".
func (n OSCNaming) ExecutorGoBackAddress(number int) string {
	return fmt.Sprintf("%s%d%s", n.ExecutorPrefix, number, n.ExecutorGoBack)
}
