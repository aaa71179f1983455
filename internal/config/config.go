package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const envPrefix = "PRESENCE_"

const (
	FileSource = "file"
	S3Source   = "s3"
)

type Application struct {
	Host  string `koanf:"host"`
	Addr  string `koanf:"addr"`
	Data  Data   `koanf:"data"`
	Cache Cache  `koanf:"cache"`
}

type Data struct {
	Source string `koanf:"source"`
	Csv    string `koanf:"csv"`
	S3     S3     `koanf:"s3"`
}

type S3 struct {
	Region string `koanf:"region"`
	Bucket string `koanf:"bucket"`
	Key    string `koanf:"key"`
}

type Cache struct {
	// TTL of a loaded presence store. Zero reloads the source on every request.
	TTL time.Duration `koanf:"ttl"`
}

func Defaults() Application {
	return Application{
		Host: "http://localhost:5000",
		Addr: ":5000",
		Data: Data{
			Source: FileSource,
			Csv:    "runtime/data/sample_data.csv",
			S3: S3{
				Region: "eu-central-1",
			},
		},
	}
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Defaults(), "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, envPrefix)), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
