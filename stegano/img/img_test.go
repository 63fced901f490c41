package img

import (
	"bytes"
	"image"
	"image/gif"
	"image/png"
	"image/jpeg"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"dctsteg/transform"
	"dctsteg/stegano/dct"
	"dctsteg/cryptography"
)

func TestSynthesizedCoverCapacity( t *testing.T ) {
	for _, bits := range []int{ 1, 64, 1000, 12345 } {
		cover, err := synthesizeCover( bits )
		if err != nil {
			t.Fatalf("Failed to synthesize cover: %s", err.Error())
		}
		if dct.CapacityBits( cover ) < bits {
			t.Errorf("synthesized cover holds %d bits, wanted at least %d",
				dct.CapacityBits( cover ), bits)
		}
	}
}

// the coefficients we embed into must come back unchanged after the
// cover has been flattened to pixels, written as png and decoded again.
func TestCoverSurvivesPixelRoundTrip( t *testing.T ) {
	cover, err := synthesizeCover( 1024 )
	if err != nil {
		t.Fatalf("Failed to synthesize cover: %s", err.Error())
	}
	// force a known lsb pattern into the embedding slot
	for b := 0; b < cover.Blocks(); b++ {
		c := cover.Coeff( b, 27 )
		if b%2 == 0 {
			c |= 1
		} else {
			c &^= 1
		}
		cover.SetCoeff( b, 27, c )
	}

	buf := new( bytes.Buffer )
	if err := png.Encode( buf, cover.toImage() ); err != nil {
		t.Fatalf("Failed to encode png: %s", err.Error())
	}
	m, err := png.Decode( buf )
	if err != nil {
		t.Fatalf("Failed to decode png: %s", err.Error())
	}
	cover2 := fromImage( m )

	if cover2.Blocks() != cover.Blocks() {
		t.Fatalf("block count changed: %d != %d", cover2.Blocks(), cover.Blocks())
	}
	for b := 0; b < cover.Blocks(); b++ {
		for _, slot := range []int{ 0, 9, 18, 27 } {
			if cover.Coeff( b, slot ) != cover2.Coeff( b, slot ) {
				t.Fatalf("coefficient (block %d, slot %d) changed: %d != %d",
					b, slot, cover.Coeff( b, slot ), cover2.Coeff( b, slot ))
			}
		}
	}
}

func TestCodecRejectsUnknownFormats( t *testing.T ) {
	codec := Codec{}
	if _, err := codec.Decode( []byte("certainly not an image"), "x.bin" ); err == nil {
		t.Errorf("garbage was accepted as a cover")
	}
	if _, err := codec.Decode( []byte{ 0xff, 0xd8, 0xff, 0xe0, 0, 0, 0, 0 }, "x.jpg" ); err == nil {
		t.Errorf("jpeg cover was accepted by the coefficient codec")
	}
}

func TestPluginRoundTripSynthesizedCover( t *testing.T ) {
	plugin := dct.NewPlugin( Codec{}, transform.Pipeline{} )
	payload := []byte("attack at dawn, bring snacks")

	stego, err := plugin.Embed( payload, "orders.txt", nil, "", "out.png", dct.Context{} )
	require.NoError( t, err )
	// the stego blob must be a real png file
	require.True( t, bytes.HasPrefix( stego, []byte{ 0x89, 0x50, 0x4e, 0x47 } ) )

	name, err := plugin.ExtractFileName( stego, "out.png" )
	require.NoError( t, err )
	require.Equal( t, "orders.txt", name )

	extracted, err := plugin.Extract( stego, "out.png", dct.Context{} )
	require.NoError( t, err )
	require.Equal( t, payload, extracted )
}

func TestPluginRoundTripRealCover( t *testing.T ) {
	// 1024 blocks of mid-gray texture, enough for the encrypted container
	m := image.NewGray( image.Rect( 0, 0, 256, 256 ) )
	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			m.SetGray( x, y, color.Gray{ uint8( 112 + (x*3+y*5)%32 ) } )
		}
	}
	coverBuf := new( bytes.Buffer )
	if err := png.Encode( coverBuf, m ); err != nil {
		t.Fatalf("Failed to encode cover: %s", err.Error())
	}

	key, err := cryptography.GenRandom( cryptography.SymKeySize )
	require.NoError( t, err )
	ctx := dct.Context{ Compress: true, Encrypt: true, Key: key }

	plugin := dct.NewPlugin( Codec{}, transform.Pipeline{} )
	payload := bytes.Repeat( []byte("squeamish ossifrage "), 3 )

	stego, err := plugin.Embed( payload, "s.txt", coverBuf.Bytes(), "cover.png", "out.png", ctx )
	require.NoError( t, err )

	extracted, err := plugin.Extract( stego, "out.png", dct.Context{ Key: key } )
	require.NoError( t, err )
	require.Equal( t, payload, extracted )
}

// saturated regions used to clip during reconstruction and silently
// corrupt the embedded coefficients; the embed path bands the pixels now
func TestPluginRoundTripSaturatedCover( t *testing.T ) {
	m := image.NewGray( image.Rect( 0, 0, 256, 256 ) )
	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			if x < 128 {
				m.SetGray( x, y, color.Gray{ 255 } )
			} else {
				m.SetGray( x, y, color.Gray{ 0 } )
			}
		}
	}
	coverBuf := new( bytes.Buffer )
	require.NoError( t, png.Encode( coverBuf, m ) )

	payload, err := cryptography.GenRandom( 40 )
	require.NoError( t, err )

	plugin := dct.NewPlugin( Codec{}, transform.Pipeline{} )
	stego, err := plugin.Embed( payload, "s.bin", coverBuf.Bytes(), "cover.png", "out.png", dct.Context{} )
	require.NoError( t, err )

	extracted, err := plugin.Extract( stego, "out.png", dct.Context{} )
	require.NoError( t, err )
	require.Equal( t, payload, extracted )
}

func TestDecodeImage( t *testing.T ) {
	m := image.NewGray( image.Rect( 0, 0, 24, 16 ) )
	buf := new( bytes.Buffer )
	require.NoError( t, png.Encode( buf, m ) )

	decoded, err := DecodeImage( buf.Bytes() )
	require.NoError( t, err )
	require.Equal( t, 24, decoded.Bounds().Dx() )
	require.Equal( t, 16, decoded.Bounds().Dy() )
}

func TestPluginRejectsTooSmallCover( t *testing.T ) {
	// 16x16 gives 4 blocks, 4 bits, not even a header fits
	m := image.NewGray( image.Rect( 0, 0, 16, 16 ) )
	buf := new( bytes.Buffer )
	if err := png.Encode( buf, m ); err != nil {
		t.Fatalf("Failed to encode cover: %s", err.Error())
	}

	plugin := dct.NewPlugin( Codec{}, transform.Pipeline{} )
	_, err := plugin.Embed( []byte("too much"), "x", buf.Bytes(), "c.png", "o.png", dct.Context{} )
	require.ErrorIs( t, err, dct.ErrInsufficientCapacity )
}

func TestJpegCarrierRoundTrip( t *testing.T ) {
	m := image.NewGray( image.Rect( 0, 0, 128, 128 ) )
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			m.SetGray( x, y, color.Gray{ uint8( x*7 + y*13 ) } )
		}
	}
	buf := new( bytes.Buffer )
	if err := jpeg.Encode( buf, m, &jpeg.Options{ Quality: 90 } ); err != nil {
		t.Fatalf("Failed to encode jpeg: %s", err.Error())
	}

	container, err := dct.PackContainer( []byte("hi"), "h.txt", dct.Context{} )
	require.NoError( t, err )

	stego, err := HideInJpeg( buf.Bytes(), container )
	require.NoError( t, err )

	revealed, err := RevealFromJpeg( stego )
	require.NoError( t, err )

	hdr, payload, err := dct.UnpackContainer( revealed )
	require.NoError( t, err )
	require.Equal( t, "h.txt", hdr.FileName )
	require.Equal( t, []byte("hi"), payload )
}

func TestGifCarrierRoundTrip( t *testing.T ) {
	gifBytes := makeTestGif( t, 64, 64 )

	container, err := dct.PackContainer( []byte("short and sweet"), "s.txt", dct.Context{} )
	require.NoError( t, err )

	stego, err := HideInGif( gifBytes, container )
	require.NoError( t, err )

	revealed, err := RevealFromGif( stego )
	require.NoError( t, err )

	hdr, payload, err := dct.UnpackContainer( revealed )
	require.NoError( t, err )
	require.Equal( t, "s.txt", hdr.FileName )
	require.Equal( t, []byte("short and sweet"), payload )
}

func makeTestGif( t *testing.T, w, h int ) []byte {
	t.Helper()
	palette := color.Palette{
		color.Gray{ 0 }, color.Gray{ 85 }, color.Gray{ 170 }, color.Gray{ 255 },
	}
	frame := image.NewPaletted( image.Rect( 0, 0, w, h ), palette )
	for i := range frame.Pix {
		frame.Pix[i] = uint8( i % 4 )
	}
	buf := new( bytes.Buffer )
	err := gif.EncodeAll( buf, &gif.GIF{
		Image: []*image.Paletted{ frame },
		Delay: []int{ 0 },
	} )
	if err != nil {
		t.Fatalf("Failed to encode gif: %s", err.Error())
	}
	return buf.Bytes()
}

func TestGifCarrierRejectsOversizedContainer( t *testing.T ) {
	gifBytes := makeTestGif( t, 16, 16 )
	// 256 pixels carry 32 bytes, this cannot fit
	if _, err := HideInGif( gifBytes, make( []byte, 64 ) ); err == nil {
		t.Errorf("oversized container was accepted")
	}
}
