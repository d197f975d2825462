package hashing

// Hasher defines an interface for hashing
type Hasher interface {
	Compute(string) []byte
	Size() int
	IsInterfaceNil() bool
}
