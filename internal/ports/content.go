package ports

// ContentProvider reads and writes document bodies. Implementations
// surface IO failures to the caller and never partially write.
type ContentProvider interface {
	Read(path string) (string, error)
	Write(path, text string) error
}
