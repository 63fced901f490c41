package main

import (
	"os"
	"bytes"
	"testing"
	"path/filepath"
	"encoding/base64"
)

func TestResolvePasswordInlineSalt( t *testing.T ) {
	dir := t.TempDir()
	input := base64.StdEncoding.EncodeToString( []byte("sixteen salty bytes!") ) + ":hunter:2"

	pass, salt, err := resolvePassword( []byte(input), dir )
	if err != nil {
		t.Fatalf("Failed to resolve password: %s", err.Error())
	}
	if string(pass) != "hunter:2" {
		t.Errorf("Wrong password part: %s", string(pass))
	}
	if string(salt) != "sixteen salty bytes!" {
		t.Errorf("Wrong salt part: %v", salt)
	}
	// an inline salt must not touch the stored one
	if _, err = os.Stat( filepath.Join( dir, SaltFilename ) ); err == nil {
		t.Errorf("A salt file was created despite the inline salt")
	}
}

func TestResolvePasswordStoredSalt( t *testing.T ) {
	dir := t.TempDir()

	pass, salt, err := resolvePassword( []byte("hunter2"), dir )
	if err != nil {
		t.Fatalf("Failed to resolve password: %s", err.Error())
	}
	if string(pass) != "hunter2" {
		t.Errorf("Wrong password part: %s", string(pass))
	}
	if len(salt) == 0 {
		t.Fatalf("No salt was generated")
	}

	// the generated salt must persist across calls
	_, salt2, err := resolvePassword( []byte("hunter2"), dir )
	if err != nil {
		t.Fatalf("Failed to resolve password again: %s", err.Error())
	}
	if bytes.Equal( salt, salt2 ) == false {
		t.Errorf("The stored salt changed between calls")
	}
}
