package audio

import (
	"os"
	"fmt"
	"bytes"
	"encoding/base64"

	id3 "github.com/bogem/id3v2/v2"

	sutil "dctsteg/stegano/util"
)

// HideInMP3 stores the container base64-encoded in an ID3v2 comment
// frame. Not subtle, but it survives every player and tag editor that
// leaves foreign comments alone.
func HideInMP3( description string, file, container []byte ) ([]byte, error) {

	// id3v2 only works with files on disk
	tempfile, err := sutil.CreateTempfile( file )
	if err != nil {
		return nil, err
	}
	defer sutil.ShredFile( tempfile )

	tag, err := id3.Open( tempfile, id3.Options{ Parse: true } )
	if err != nil {
		return nil, err
	}
	defer tag.Close()

	comment := id3.CommentFrame{
		Encoding: id3.EncodingUTF8,
		Language: "eng",
		Description: description,
		Text: base64.StdEncoding.EncodeToString( container ),
	}
	tag.AddCommentFrame( comment )

	if err = tag.Save(); err != nil {
		return nil, err
	}
	return os.ReadFile( tempfile )
}

func RevealFromMP3( description string, data []byte ) ([]byte, error) {

	tag, err := id3.ParseReader( bytes.NewReader( data ), id3.Options{ Parse: true } )
	if err != nil {
		return nil, err
	}
	comments := tag.GetFrames( tag.CommonID("Comments") )
	for _, f := range comments {
		comment, ok := f.(id3.CommentFrame)
		if ok && comment.Description == description {
			return base64.StdEncoding.DecodeString( comment.Text )
		}
	}
	return nil, fmt.Errorf("Failed to find a comment")
}
