package core

// Transformer mutates a Document in place.
type Transformer interface {
	Transform(d *Document) error
}

// Chain applies transformers in order, stopping at the first error.
func Chain(d *Document, transformers ...Transformer) error {
	for _, tr := range transformers {
		if err := tr.Transform(d); err != nil {
			return err
		}
	}
	return nil
}
