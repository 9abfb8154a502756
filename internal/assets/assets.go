package assets

var defaultLoader = NewEmbeddedLoader()

// NewTemplateLoader returns a FilesystemLoader rooted at dir, or the embedded
// loader when dir is empty.
func NewTemplateLoader(dir string) (TemplateLoader, error) {
	if dir == "" {
		return defaultLoader, nil
	}
	fsLoader, err := NewFilesystemLoader(dir)
	if err != nil {
		return nil, err
	}
	return fsLoader, nil
}
