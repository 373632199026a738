// Package config loads the TOML file holding modem credentials, e.g.:
//
//	modem = "Motorola MB7621"
//
//	["Motorola MB7621"]
//	username = "admin"
//	password = "hunter2"
//	url = "http://192.168.100.1/MotoConnection.asp"
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// ModemConfig is one vendor's section of the config file.
type ModemConfig struct {
	Username string
	Password string
	URL      string
	AuthURL  string
}

// File is a parsed configuration. Modem names a default vendor so the CLI's
// positional argument can be omitted.
type File struct {
	Modem    string
	sections map[string]ModemConfig
}

func Load(path string) (*File, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	file := &File{
		Modem:    v.GetString("modem"),
		sections: map[string]ModemConfig{},
	}
	for key := range v.AllSettings() {
		if !v.IsSet(key+".username") && !v.IsSet(key+".password") && !v.IsSet(key+".url") {
			continue
		}
		file.sections[strings.ToLower(key)] = ModemConfig{
			Username: v.GetString(key + ".username"),
			Password: v.GetString(key + ".password"),
			URL:      v.GetString(key + ".url"),
			AuthURL:  v.GetString(key + ".auth_url"),
		}
	}
	return file, nil
}

// Vendor looks up a modem's section by its full name, case-insensitively.
func (f *File) Vendor(name string) (ModemConfig, bool) {
	mc, ok := f.sections[strings.ToLower(name)]
	return mc, ok
}
