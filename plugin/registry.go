package plugin

// Registry maps format extensions to reader and writer plugins.
type Registry struct {
	readers map[string]Reader
	writers map[string]Writer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		readers: make(map[string]Reader),
		writers: make(map[string]Writer),
	}
}

// RegisterReader adds a reader keyed by its default file extension.
// Registering a second reader for the same extension is a conflict.
func (r *Registry) RegisterReader(reader Reader) error {
	ext := reader.DefaultFileExtension()
	if existing, ok := r.readers[ext]; ok {
		return &ConflictError{PluginID: reader.ID(), OtherID: existing.ID(), Extension: ext}
	}
	r.readers[ext] = reader
	return nil
}

// RegisterWriter adds a writer keyed by its default file extension.
// Registering a second writer for the same extension is a conflict.
func (r *Registry) RegisterWriter(writer Writer) error {
	ext := writer.DefaultFileExtension()
	if existing, ok := r.writers[ext]; ok {
		return &ConflictError{PluginID: writer.ID(), OtherID: existing.ID(), Extension: ext}
	}
	r.writers[ext] = writer
	return nil
}

// ReaderFor returns the reader registered for the given extension.
func (r *Registry) ReaderFor(extension string) (Reader, error) {
	reader, ok := r.readers[extension]
	if !ok {
		return nil, &MissingPluginError{Kind: "reader", Extension: extension}
	}
	return reader, nil
}

// WriterFor returns the writer registered for the given extension.
func (r *Registry) WriterFor(extension string) (Writer, error) {
	writer, ok := r.writers[extension]
	if !ok {
		return nil, &MissingPluginError{Kind: "writer", Extension: extension}
	}
	return writer, nil
}

// Readers returns all registered readers, keyed by extension.
func (r *Registry) Readers() map[string]Reader {
	out := make(map[string]Reader, len(r.readers))
	for ext, reader := range r.readers {
		out[ext] = reader
	}
	return out
}

// Writers returns all registered writers, keyed by extension.
func (r *Registry) Writers() map[string]Writer {
	out := make(map[string]Writer, len(r.writers))
	for ext, writer := range r.writers {
		out[ext] = writer
	}
	return out
}
