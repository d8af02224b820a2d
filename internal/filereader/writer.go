package filereader

import (
	"os"

	"github.com/pkg/errors"
)

// Put creates or truncates path and writes data to it.
func (r *Reader) Put(path string, data []byte) error {
	f, err := r.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return errors.Wrapf(f.Close(), "failed to close %s", path)
}

// PutText encodes text with the reader's encoding and writes it to path.
// Text the encoding cannot represent is an error; nothing is written.
func (r *Reader) PutText(path string, text string) error {
	b, err := r.enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return errors.Wrapf(err, "failed to encode text for %s", path)
	}
	return r.Put(path, b)
}
