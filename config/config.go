package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Site    SiteConfig    `yaml:"site"`
	Content ContentConfig `yaml:"content"`
	GitHub  GitHubConfig  `yaml:"github"`
	Mongo   MongoConfig   `yaml:"mongo"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// SiteConfig holds site-wide metadata used by sitemap and feed generation.
type SiteConfig struct {
	URL         string `yaml:"url"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type ContentConfig struct {
	// Dir is the blog content directory, relative to the config file location.
	Dir string `yaml:"dir"`
}

type GitHubConfig struct {
	Username     string `yaml:"username"`
	ProjectLimit int    `yaml:"project_limit"`
}

// MongoConfig values can be overridden by MONGODB_URI / MONGODB_DB
// environment variables so credentials stay out of config.yaml.
type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		c.Mongo.URI = uri
	}
	if name := os.Getenv("MONGODB_DB"); name != "" {
		c.Mongo.DBName = name
	}
	if c.Content.Dir == "" {
		c.Content.Dir = filepath.Join("content", "blog")
	}
	if c.GitHub.ProjectLimit <= 0 {
		c.GitHub.ProjectLimit = 6
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}

	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

// ContentDir resolves the configured content directory against the base path.
func ContentDir() string {
	cfg := GetConfig()
	if filepath.IsAbs(cfg.Content.Dir) {
		return cfg.Content.Dir
	}
	return filepath.Join(GetBasePath(), cfg.Content.Dir)
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
