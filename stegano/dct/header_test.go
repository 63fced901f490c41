package dct

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestHeaderRoundTrip( t *testing.T ) {
	testCases := []struct {
		name		string
		length		uint32
		fileName	string
		compress	bool
		encrypt		bool
	}{
		{ "empty", 0, "", false, false },
		{ "plain file", 10, "a.txt", true, false },
		{ "encrypted", 1024, "secret.bin", false, true 	},
		{ "both flags", 4096, "notes.md", true, true },
		{ "unicode name", 77, "резюме.pdf", false, false },
		{ "max name", 1 << 30, strings.Repeat("n", 255), true, true },
	}

	for _, tc := range testCases {
		t.Run(tc.name, func( t *testing.T ) {
			hdr := Header{
				PayloadLength: tc.length,
				FileName: tc.fileName,
				Compress: tc.compress,
				Encrypt: tc.encrypt,
			}
			raw, err := hdr.Encode()
			if err != nil {
				t.Fatalf("Failed to encode header: %s", err.Error())
			}
			if len(raw) != hdr.Size() {
				t.Errorf("Encoded length %d does not match Size() %d", len(raw), hdr.Size())
			}

			decoded, err := DecodeHeader( bytes.NewReader(raw) )
			if err != nil {
				t.Fatalf("Failed to decode header: %s", err.Error())
			}
			if decoded.PayloadLength != tc.length || decoded.FileName != tc.fileName ||
				decoded.Compress != tc.compress || decoded.Encrypt != tc.encrypt {
				t.Errorf("Header was changed by encode/decode: %+v != %+v", decoded, hdr)
			}
		})
	}
}

// the byte-exact layout must never drift between versions
func TestHeaderWireFormat( t *testing.T ) {
	hdr := Header{ PayloadLength: 10, FileName: "a.txt", Compress: true, Encrypt: false }
	raw, err := hdr.Encode()
	if err != nil {
		t.Fatalf("Failed to encode header: %s", err.Error())
	}

	expected := append( []byte("OSDCT"),
		0x01,			// version
		0x0A, 0x00, 0x00, 0x00,	// payload length, little-endian
		0x05,			// file name length
		0x01,			// compression
		0x00,			// encryption
	)
	expected = append( expected, []byte("a.txt")... )

	if bytes.Equal( raw, expected ) == false {
		t.Errorf("Wire format mismatch.\n got: %v\nwant: %v", raw, expected)
	}
}

func TestHeaderStampMismatch( t *testing.T ) {
	hdr := Header{ PayloadLength: 3, FileName: "x" }
	raw, _ := hdr.Encode()
	raw[0] = 'X'

	decoded, err := DecodeHeader( bytes.NewReader(raw) )
	if errors.Is( err, ErrInvalidHeader ) == false {
		t.Errorf("Expected ErrInvalidHeader, got %v", err)
	}
	if decoded != nil {
		t.Errorf("A partially parsed header was returned: %+v", decoded)
	}
}

func TestHeaderVersionMismatch( t *testing.T ) {
	hdr := Header{ PayloadLength: 3, FileName: "x" }
	raw, _ := hdr.Encode()
	raw[len(DataStamp)] = 0x02	// rest of the bytes still parse cleanly

	decoded, err := DecodeHeader( bytes.NewReader(raw) )
	if errors.Is( err, ErrHeaderVersion ) == false {
		t.Errorf("Expected ErrHeaderVersion, got %v", err)
	}
	if decoded != nil {
		t.Errorf("A partially parsed header was returned: %+v", decoded)
	}
}

func TestHeaderTruncated( t *testing.T ) {
	hdr := Header{ PayloadLength: 500, FileName: "name.bin" }
	raw, _ := hdr.Encode()

	// cut inside the stamp, the fixed block and the file name tail
	for _, n := range []int{ 0, 2, len(DataStamp), len(DataStamp) + 3, len(raw) - 1 } {
		if _, err := DecodeHeader( bytes.NewReader(raw[:n]) ); errors.Is( err, ErrIncompleteHeader ) == false {
			t.Errorf("Truncation at %d bytes: expected ErrIncompleteHeader, got %v", n, err)
		}
	}
}

func TestFileNameTooLong( t *testing.T ) {
	hdr := Header{ PayloadLength: 1, FileName: strings.Repeat("n", 256) }
	if _, err := hdr.Encode(); errors.Is( err, ErrFileNameTooLong ) == false {
		t.Errorf("Expected ErrFileNameTooLong, got %v", err)
	}
}

func TestMaxHeaderSize( t *testing.T ) {
	for n := 0; n <= 255; n++ {
		hdr := Header{ FileName: strings.Repeat("a", n) }
		if hdr.Size() > MaxHeaderSize() {
			t.Fatalf("Header with a %d byte name is larger than MaxHeaderSize", n)
		}
	}
}
