package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"dctsteg/util"
	"dctsteg/cryptography"
)

/*
 * Configuration of the command line tool. It only holds defaults; each
 * embed or extract operation still receives its options explicitly, so
 * two operations can never interfere through shared state.
 */
type StegoOptions struct {
	Compress	bool	`yaml:"compress"`
	Encrypt		bool	`yaml:"encrypt"`

	// description of the ID3 comment frame used by the mp3 carrier
	Description	string	`yaml:"mp3_description"`
}

type FullConfig struct {
	Logger		util.LoggerInfo	`yaml:"logger_config"`
	Stego		StegoOptions	`yaml:"stego_options"`
}

func DefaultConfig() *FullConfig {
	return &FullConfig{
		Logger: util.LoggerInfo{
			IsColored: true,
			SaveTime: false,
			Mode: util.Error | util.Warning,
		},
		Stego: StegoOptions{
			Compress: true,
			Encrypt: false,
			Description: "cover art",
		},
	}
}

/*
 * Functions for loading and saving configuration in YAML format.
 */
func LoadConfig( filename string, key []byte ) (*FullConfig, error) {
	data, err := LoadEncrypted( filename, key )
	if err != nil {
		return nil, err
	}

	var conf FullConfig
	if err := yaml.Unmarshal( data, &conf ); err != nil {
		return nil, err
	}
	return &conf, nil
}

func SaveConfig( filename string, key []byte, c *FullConfig ) error {
	data, err := yaml.Marshal( *c )
	if err != nil {
		return err
	}
	return SaveEncrypted( filename, key, data )
}

/*
 * Functions for saving and loading encrypted files. A nil or wrongly
 * sized key means plaintext.
 */
func LoadEncrypted( filename string, key []byte ) ([]byte, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}
	if key != nil && len(key) == cryptography.SymKeySize {
		return cryptography.Decrypt( data, key )
	}
	return data, nil
}

func SaveEncrypted( filename string, key, data []byte ) error {
	var err error
	if key != nil && len(key) == cryptography.SymKeySize {
		data, err = cryptography.Encrypt( data, key )
		if err != nil {
			return err
		}
	}
	return os.WriteFile( filename, data, 0600 )
}
