package transform

import (
	"io"
	"bytes"
	"compress/gzip"

	"dctsteg/cryptography"
	"dctsteg/stegano/dct"
)

// Pipeline applies the optional payload transforms in a fixed order:
// compress, then encrypt, on the way out; the reverse on the way in.
// It implements dct.Transformer.
type Pipeline struct{}

// Out transforms a payload before embedding. The returned context is
// what actually happened: when compression would not shrink the data it
// is skipped and the flag cleared, so the header never lies about the
// payload encoding.
func (Pipeline) Out( data []byte, ctx dct.Context ) ([]byte, dct.Context, error) {
	eff := ctx
	if ctx.Compress {
		flag, compressed, err := Compress( data )
		if err != nil {
			return nil, ctx, err
		}
		eff.Compress = flag == 1
		data = compressed
	}
	if ctx.Encrypt {
		encrypted, err := cryptography.Encrypt( data, ctx.Key )
		if err != nil {
			return nil, ctx, err
		}
		data = encrypted
	}
	return data, eff, nil
}

// In undoes Out, trusting the flags the caller recovered from the
// header.
func (Pipeline) In( data []byte, ctx dct.Context ) ([]byte, error) {
	var err error
	if ctx.Encrypt {
		data, err = cryptography.Decrypt( data, ctx.Key )
		if err != nil {
			return nil, err
		}
	}
	if ctx.Compress {
		data, err = Decompress( data )
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

// Compress returns 1 and the gzipped data when that actually decreases
// the size, otherwise 0 and the data untouched.
func Compress( data []byte ) (uint8, []byte, error) {
	if data == nil || len(data) == 0 {
		return 0, data, nil
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter( &buf )
	if _, err := gz.Write( data ); err != nil {
		return 0, nil, err
	}
	if err := gz.Close(); err != nil {
		return 0, nil, err
	}

	if buf.Len() >= len(data) {
		return 0, data, nil
	}
	return 1, buf.Bytes(), nil
}

func Decompress( data []byte ) ([]byte, error) {
	if data == nil || len(data) == 0 {
		return data, nil
	}
	gz, err := gzip.NewReader( bytes.NewReader( data ) )
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	var out bytes.Buffer
	if _, err := io.Copy( &out, gz ); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
