package types

// Service is a named collection of executable methods that can be registered
// with the extension registry and invoked by a host workflow engine.
type Service interface {
	Name() string
	Methods() Signatures
	Method(name string) (Executable, error)
}
