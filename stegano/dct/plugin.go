package dct

import (
	"fmt"
)

// Context carries the per-operation options. It is passed by value on
// every call; there is deliberately no process-wide configuration that an
// operation could mutate behind another one's back.
type Context struct {
	Compress	bool
	Encrypt		bool
	Key		[]byte	// symmetric key, required only when Encrypt is set
}

// ImageCodec turns file bytes into a coefficient grid and back. The
// transform math and the container formats live behind this interface.
// Decode reads a stego file with its pixels exactly as stored;
// PrepareCover may precondition a fresh cover so that the embedded
// coefficients survive reconstruction.
type ImageCodec interface {
	Decode( data []byte, name string ) (CoverMedium, error)
	PrepareCover( data []byte, name string ) (CoverMedium, error)
	Encode( cover CoverMedium, name string ) ([]byte, error)
	SynthesizeRandom( bitCapacity int ) (CoverMedium, error)
}

// Transformer applies the optional payload transforms. Out returns the
// effective context as well, because a transform may decide to back off
// (compression that would grow the payload is skipped, and the header
// flag must reflect that).
type Transformer interface {
	Out( data []byte, ctx Context ) ([]byte, Context, error)
	In( data []byte, ctx Context ) ([]byte, error)
}

// Plugin ties the container protocol to its collaborators. It holds no
// mutable state of its own, so a single instance is safe to reuse across
// operations.
type Plugin struct {
	codec		ImageCodec
	transformer	Transformer
}

func NewPlugin( codec ImageCodec, transformer Transformer ) *Plugin {
	return &Plugin{ codec: codec, transformer: transformer }
}

func (p *Plugin) Name() string {
	return "DctLSB"
}

func (p *Plugin) Description() string {
	return "Least-significant bit steganography over quantized DCT coefficients"
}

func (p *Plugin) Usage() string {
	return "embed [-c] [-e] <payload> <stego> [cover] | extract [-e] <stego> [dir] | name <stego>"
}

// Embed hides the payload in the cover and returns the serialized stego
// image. When no cover is supplied a random one is synthesized with just
// enough coefficient space, which is a designed fallback, not error
// recovery.
func (p *Plugin) Embed( payload []byte, payloadName string, cover []byte, coverName, stegoName string, ctx Context ) ([]byte, error) {

	data, effCtx, err := p.transformer.Out( payload, ctx )
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	var medium CoverMedium
	if cover == nil {
		medium, err = p.codec.SynthesizeRandom( SynthesisBits( len(data) ) )
	} else {
		medium, err = p.codec.PrepareCover( cover, coverName )
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	w, err := NewWriter( medium, len(data), payloadName, effCtx )
	if err != nil {
		return nil, err
	}
	if _, err := w.Write( data ); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	out, err := p.codec.Encode( w.Cover(), stegoName )
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return out, nil
}

// ExtractFileName recovers only the embedded file name.
func (p *Plugin) ExtractFileName( stego []byte, stegoName string ) (string, error) {
	medium, err := p.codec.Decode( stego, stegoName )
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}
	r, err := NewReader( medium )
	if err != nil {
		return "", err
	}
	return r.Header().FileName, nil
}

// Extract recovers the payload. The compression and encryption flags come
// from the header; only the key is taken from the caller's context.
func (p *Plugin) Extract( stego []byte, stegoName string, ctx Context ) ([]byte, error) {
	medium, err := p.codec.Decode( stego, stegoName )
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	r, err := NewReader( medium )
	if err != nil {
		return nil, err
	}

	hdr := r.Header()
	data, err := r.Read( int(hdr.PayloadLength) )
	if err != nil {
		return nil, err
	}
	if len(data) != int(hdr.PayloadLength) {
		return nil, fmt.Errorf("%w: got %d of %d bytes", ErrImageDataRead, len(data), hdr.PayloadLength)
	}

	ctx.Compress = hdr.Compress
	ctx.Encrypt = hdr.Encrypt
	out, err := p.transformer.In( data, ctx )
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return out, nil
}
