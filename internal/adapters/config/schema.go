package config

// Hoistfile represents the structure of the hoist.yaml configuration file.
type Hoistfile struct {
	Version      string      `yaml:"version"`
	PackagesDir  string      `yaml:"packagesDir"`
	StripPrefix  string      `yaml:"stripPrefix"`
	Manifest     string      `yaml:"manifest"`
	BackupSuffix string      `yaml:"backupSuffix"`
	IndexDelay   string      `yaml:"indexDelay"`
	InstallHint  string      `yaml:"installHint"`
	Registry     RegistryDTO `yaml:"registry"`
	Groups       [][]string  `yaml:"groups"`
}

// RegistryDTO describes the registry CLI section.
type RegistryDTO struct {
	Command string            `yaml:"command"`
	Env     map[string]string `yaml:"env"`
}
