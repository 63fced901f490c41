package main

import (
	"os"
	"fmt"
	"bytes"
	"path/filepath"

	"dctsteg/util"
	"dctsteg/config"
	"dctsteg/transform"
	"dctsteg/cryptography"
	"dctsteg/stegano/dct"
	"dctsteg/stegano/img"
	"dctsteg/stegano/audio"
)

const (
	StegFolder = ".dctsteg"
	ConfigFilename = "config.yaml"
	SaltFilename = "salt.bin"
)

var logger *util.Logger

func main() {

	if len( os.Args ) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" || os.Args[1] == "help" {
		help()
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fatal("Failed to get home directory:", err)
	}
	stegFolder := filepath.Join( home, StegFolder )
	if _, err = os.Stat( stegFolder ); err != nil {
		if err = os.Mkdir( stegFolder, 0700 ); err != nil {
			fatal("Failed to create application directory in user's home folder:", err)
		}
	}

	// the configuration only carries defaults, so it lives in plaintext
	configFile := filepath.Join( stegFolder, ConfigFilename )
	conf, err := config.LoadConfig( configFile, nil )
	if err != nil {
		conf = config.DefaultConfig()
		if err = config.SaveConfig( configFile, nil, conf ); err != nil {
			fatal("Failed to save default configuration:", err)
		}
	}
	logger = util.NewLogger( &conf.Logger )

	switch os.Args[1] {
	case "embed":
		err = embed( stegFolder, conf, os.Args[2:] )
	case "extract":
		err = extract( stegFolder, conf, os.Args[2:] )
	case "name":
		err = name( conf, os.Args[2:] )
	default:
		help()
		return
	}
	if err != nil {
		logger.LogError( err )
		os.Exit(-1)
	}
}

func embed( stegFolder string, conf *config.FullConfig, args []string ) error {

	ctx := dct.Context{
		Compress: conf.Stego.Compress,
		Encrypt: conf.Stego.Encrypt,
	}
	files := []string{}
	for _, arg := range args {
		switch arg {
		case "-c":
			ctx.Compress = true
		case "-e":
			ctx.Encrypt = true
		default:
			files = append( files, arg )
		}
	}
	if len(files) < 2 {
		return fmt.Errorf("Usage: embed [-c] [-e] <payload> <stego> [cover]")
	}

	payload, err := os.ReadFile( files[0] )
	if err != nil {
		return err
	}
	if ctx.Encrypt {
		if ctx.Key, err = derivePayloadKey( stegFolder ); err != nil {
			return err
		}
	}

	var cover []byte
	coverName := ""
	if len(files) > 2 {
		coverName = files[2]
		if cover, err = os.ReadFile( coverName ); err != nil {
			return err
		}
	}

	payloadName := util.BaseName( files[0] )
	stegoName := files[1]

	var stego []byte
	kind := carrierKind( cover )
	if kind == "img" {
		if cover != nil {
			if m, derr := img.DecodeImage( cover ); derr == nil {
				b := m.Bounds()
				logger.LogInfo( fmt.Sprintf("Cover %s: %dx%d", coverName, b.Dx(), b.Dy()) )
			}
		}
		plugin := dct.NewPlugin( img.Codec{}, transform.Pipeline{} )
		stego, err = plugin.Embed( payload, payloadName, cover, coverName, stegoName, ctx )
	} else {
		// blob carriers transport a ready-made container
		data, effCtx, terr := transform.Pipeline{}.Out( payload, ctx )
		if terr != nil {
			return terr
		}
		container, cerr := dct.PackContainer( data, payloadName, effCtx )
		if cerr != nil {
			return cerr
		}
		switch kind {
		case "jpeg":
			stego, err = img.HideInJpeg( cover, container )
		case "gif":
			stego, err = img.HideInGif( cover, container )
		case "flac", "mp3":
			stego, err = audio.Hide( conf.Stego.Description, cover, container )
		}
	}
	if err != nil {
		return err
	}

	if err = os.WriteFile( stegoName, stego, 0600 ); err != nil {
		return err
	}
	logger.LogInfo( fmt.Sprintf("Embedded %d bytes into %s", len(payload), stegoName) )
	return nil
}

func extract( stegFolder string, conf *config.FullConfig, args []string ) error {

	ctx := dct.Context{}
	files := []string{}
	for _, arg := range args {
		if arg == "-e" {
			ctx.Encrypt = true
		} else {
			files = append( files, arg )
		}
	}
	if len(files) < 1 {
		return fmt.Errorf("Usage: extract [-e] <stego> [directory]")
	}

	stego, err := os.ReadFile( files[0] )
	if err != nil {
		return err
	}
	if ctx.Encrypt {
		if ctx.Key, err = derivePayloadKey( stegFolder ); err != nil {
			return err
		}
	}

	var payload []byte
	var fileName string
	if carrierKind( stego ) == "img" {
		plugin := dct.NewPlugin( img.Codec{}, transform.Pipeline{} )
		if fileName, err = plugin.ExtractFileName( stego, files[0] ); err != nil {
			return err
		}
		if payload, err = plugin.Extract( stego, files[0], ctx ); err != nil {
			return err
		}
	} else {
		container, cerr := revealContainer( conf, stego )
		if cerr != nil {
			return cerr
		}
		hdr, data, cerr := dct.UnpackContainer( container )
		if cerr != nil {
			return cerr
		}
		ctx.Compress = hdr.Compress
		ctx.Encrypt = hdr.Encrypt
		if payload, err = ( transform.Pipeline{} ).In( data, ctx ); err != nil {
			return err
		}
		fileName = hdr.FileName
	}

	// embedded names are untrusted, never let them escape the directory
	outName := util.BaseName( util.FixUnicode( fileName ) )
	if outName == "" {
		outName = util.GenFilename( "payload", "bin" )
	}
	dir := "."
	if len(files) > 1 {
		dir = files[1]
	}
	outPath := filepath.Join( dir, outName )
	if err = os.WriteFile( outPath, payload, 0600 ); err != nil {
		return err
	}
	fmt.Println( outPath )
	return nil
}

func name( conf *config.FullConfig, args []string ) error {

	if len(args) < 1 {
		return fmt.Errorf("Usage: name <stego>")
	}
	stego, err := os.ReadFile( args[0] )
	if err != nil {
		return err
	}

	var fileName string
	if carrierKind( stego ) == "img" {
		plugin := dct.NewPlugin( img.Codec{}, transform.Pipeline{} )
		if fileName, err = plugin.ExtractFileName( stego, args[0] ); err != nil {
			return err
		}
	} else {
		container, err := revealContainer( conf, stego )
		if err != nil {
			return err
		}
		hdr, err := dct.DecodeHeader( bytes.NewReader( container ) )
		if err != nil {
			return err
		}
		fileName = hdr.FileName
	}
	fmt.Println( util.FixUnicode( fileName ) )
	return nil
}

func revealContainer( conf *config.FullConfig, stego []byte ) ([]byte, error) {
	switch carrierKind( stego ) {
	case "jpeg":
		return img.RevealFromJpeg( stego )
	case "gif":
		return img.RevealFromGif( stego )
	case "flac", "mp3":
		return audio.Reveal( conf.Stego.Description, stego )
	}
	return nil, fmt.Errorf("Unsupported carrier format.")
}

// carrierKind routes by magic bytes. Everything the coefficient pipeline
// handles itself (png, bmp, synthesized covers) is "img".
func carrierKind( data []byte ) string {
	if len(data) < 4 {
		return "img"
	}
	switch {
	case data[0] == 0xff && data[1] == 0xd8 && data[2] == 0xff:
		return "jpeg"
	case bytes.Equal( data[:4], []byte("GIF8") ):
		return "gif"
	case bytes.Equal( data[:4], []byte("fLaC") ):
		return "flac"
	case bytes.Equal( data[:3], []byte("ID3") ) || ( data[0] == 0xff && data[1] & 0xe0 == 0xe0 ):
		return "mp3"
	}
	return "img"
}

func derivePayloadKey( stegFolder string ) ([]byte, error) {
	password, err := util.GetPasswd("Password: ")
	if err != nil {
		return nil, err
	}
	pass, salt, err := resolvePassword( password, stegFolder )
	if err != nil {
		return nil, err
	}
	master := cryptography.DeriveKey( pass, salt )
	key := cryptography.DeriveSubkey( master, "payload" )
	if key == nil {
		return nil, fmt.Errorf("Failed to derive payload key")
	}
	return key, nil
}

// resolvePassword separates a "<base64 salt>:<password>" input, which
// carries its own salt and makes a stego file portable between machines,
// from a plain one, which uses the salt stored next to the configuration.
func resolvePassword( password []byte, stegFolder string ) ([]byte, []byte, error) {
	pass, salt, err := cryptography.SplitWithSalt( string(password) )
	if err == nil {
		return pass, salt, nil
	}
	salt, err = getSalt( stegFolder )
	if err != nil {
		return nil, nil, err
	}
	return password, salt, nil
}

func getSalt( stegFolder string ) ([]byte, error) {
	saltFile := filepath.Join( stegFolder, SaltFilename )
	salt, err := os.ReadFile( saltFile )
	if err != nil {
		salt, err = cryptography.GenRandom( cryptography.SaltSize )
		if err != nil {
			return nil, err
		}
		if err = os.WriteFile( saltFile, salt, 0600 ); err != nil {
			return nil, err
		}
	}
	return salt, nil
}

func fatal( args ...any ) {
	fmt.Println( args... )
	os.Exit(-1)
}

func help() {
	line := `Usage: ./dctsteg <command> [arguments]

The following commands are supported:
	embed [-c] [-e] <payload> <stego> [cover]
			hide a file inside a cover image or audio file.
			without a cover a random one is generated.
			-c compresses and -e encrypts the payload.
	extract [-e] <stego> [directory]
			recover a hidden file into the given directory.
	name <stego>	print the name of the hidden file.
	help		show this message.

Supported covers: png, bmp, jpeg, gif, flac, mp3.
`

	fmt.Printf("%s", line)
}
