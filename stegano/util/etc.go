package util

import (
	"os"
	"crypto/rand"
)

const (
	ShredingCount = 10
)

// ShredFile overwrites a temporary file with random bytes a few times
// before it gets unlinked by the caller.
func ShredFile( filename string ) error {

	fileInfo, err := os.Stat( filename )
	if err != nil {
		return err
	}

	buf := make( []byte, fileInfo.Size() )
	for i := 0; i < ShredingCount; i++ {
		if _, err := rand.Read( buf ); err != nil {
			return err
		}
		if err = os.WriteFile( filename, buf, 0660 ); err != nil {
			return err
		}
	}
	return os.Remove( filename )
}

// CreateTempfile is used by carriers whose libraries only work with
// files on disk.
func CreateTempfile( data []byte ) (string, error) {
	f, err := os.CreateTemp( "", "tmpfile-" )
	if err != nil {
		return "", err
	}
	defer f.Close()
	if data != nil {
		if _, err := f.Write( data ); err != nil {
			return "", err
		}
	}
	return f.Name(), nil
}
