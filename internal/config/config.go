package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// commonConf is the data required for all services
type commonConf struct {
	LogDir  string `toml:"log_dir"`
	DataDir string `toml:"data_dir"`
	Debug   bool   `toml:"debug"`
}

// serverConf is the data required for the HTTP frontend
type serverConf struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// databaseConf is the data required to establish a PostgreSQL connection
type databaseConf struct {
	DBname  string `toml:"dbname"`
	Host    string `toml:"host"`
	SSLmode string `toml:"sslmode"`
	User    string `toml:"user"`
}

// String returns a DSN with all information from the struct
func (d databaseConf) String() string {
	return fmt.Sprintf("sslmode=%s host=%s user=%s dbname=%s", d.SSLmode, d.Host, d.User, d.DBname)
}

// Loaded configuration sections
var (
	Common = commonConf{
		LogDir:  "./logs",
		DataDir: "./data",
	}
	Server = serverConf{
		Host: "localhost",
		Port: 8888,
	}
	Database = databaseConf{
		DBname:  "blogicum",
		Host:    "localhost",
		SSLmode: "disable",
		User:    "blogicum",
	}
)

// configStruct is the glue for all configuration sections
type configStruct struct {
	Common   *commonConf   `toml:"common"`
	Server   *serverConf   `toml:"server"`
	Database *databaseConf `toml:"database"`
}

func Load(path string) error {
	md, err := toml.DecodeFile(path, &configStruct{&Common, &Server, &Database})
	if err != nil {
		return err
	}
	if len(md.Undecoded()) > 0 {
		return fmt.Errorf("undecoded config keys: %v", md.Undecoded())
	}
	return nil
}

// Save writes the current configuration back, normalizing formatting and
// filling in defaults for keys the file omitted.
func Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := toml.NewEncoder(f)
	if err := enc.Encode(configStruct{&Common, &Server, &Database}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
