// Package persist encodes Networks as compressed JSON, either in memory or as files. Decoding
// always builds a new Network; nothing is changed unless the whole operation succeeds.
package persist

import (
	"bytes"
	"compress/lzw"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	nn "github.com/LazureLeming/object-oriented-neural-network"
)

// Version is the version of the format written by Encode
const Version int = 1

type document struct {
	Version int         `json:"version"`
	Network *networkDoc `json:"network"`
}

// Encode writes the full topology, weights, and biases of the Network to 'w'
func Encode(w io.Writer, net *nn.Network) error {
	if net == nil {
		return &Error{Op: "encode", Err: errors.Errorf("Network is nil")}
	}

	lw := lzw.NewWriter(w, lzw.LSB, 8)

	if err := json.NewEncoder(lw).Encode(document{Version, toDoc(net.State())}); err != nil {
		lw.Close()
		return &Error{Op: "encode", Err: errors.Wrapf(err, "Writing JSON failed\n")}
	}

	if err := lw.Close(); err != nil {
		return &Error{Op: "encode", Err: errors.Wrapf(err, "Flushing compressor failed\n")}
	}

	return nil
}

// Decode reads a Network written by Encode. The returned Network has the same ID, topology,
// weights, and biases as the one encoded.
func Decode(r io.Reader) (*nn.Network, error) {
	lr := lzw.NewReader(r, lzw.LSB, 8)
	defer lr.Close()

	var doc document
	if err := json.NewDecoder(lr).Decode(&doc); err != nil {
		return nil, &Error{Op: "decode", Err: errors.Wrapf(err, "Reading JSON failed\n")}
	}

	if doc.Version != Version {
		return nil, &Error{Op: "decode", Err: errors.Wrapf(ErrBadVersion, "version %d", doc.Version)}
	}

	net, err := nn.FromState(doc.Network.state())
	if err != nil {
		return nil, &Error{Op: "decode", Err: errors.Wrapf(err, "Rebuilding Network failed\n")}
	}

	return net, nil
}

// Marshal returns the encoding of the Network as bytes
func Marshal(net *nn.Network) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, net); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal decodes a Network from bytes returned by Marshal
func Unmarshal(data []byte) (*nn.Network, error) {
	return Decode(bytes.NewReader(data))
}

// Save writes the Network to the file at 'path', with permissions 0600.
//
// If 'overwrite' is false and the file already exists, Save will return error. The Network is
// written to a temporary file in the same directory first, so an existing file is only replaced
// once the whole Network has been written.
func Save(net *nn.Network, path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return &Error{Op: "save", Path: path, Err: errors.Errorf("File already exists, and overwrite is not enabled")}
	}

	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &Error{Op: "save", Path: path, Err: errors.Wrapf(err, "Couldn't create temporary file\n")}
	}

	tmp := f.Name()
	fail := func(err error) error {
		f.Close()
		os.Remove(tmp)
		return &Error{Op: "save", Path: path, Err: err}
	}

	if err = Encode(f, net); err != nil {
		return fail(inner(err))
	}

	if err = f.Chmod(0600); err != nil {
		return fail(errors.Wrapf(err, "Couldn't set permissions\n"))
	}

	if err = f.Close(); err != nil {
		os.Remove(tmp)
		return &Error{Op: "save", Path: path, Err: errors.Wrapf(err, "Couldn't close temporary file\n")}
	}

	if err = os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &Error{Op: "save", Path: path, Err: errors.Wrapf(err, "Couldn't move temporary file into place\n")}
	}

	return nil
}

// Load reads a Network from a file written by Save
func Load(path string) (*nn.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Op: "load", Path: path, Err: err}
	}
	defer f.Close()

	net, err := Decode(f)
	if err != nil {
		return nil, &Error{Op: "load", Path: path, Err: inner(err)}
	}

	return net, nil
}

// inner strips an Error from this package down to the error it holds, so that it isn't reported
// twice when wrapped by another Op.
func inner(err error) error {
	if e, ok := err.(*Error); ok {
		return e.Err
	}

	return err
}
