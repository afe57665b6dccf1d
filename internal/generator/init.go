package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

var initFiles = map[string]string{
	"server.json": `{
  "host": {"type": "ip", "default": "0.0.0.0"},
  "port": {"type": "int", "default": 8080},
  "name": {"type": "str", "default": "my-service"},
  "debug": {"type": "bool", "default": false},
  "read_timeout": {"type": "double", "default": 30},
  "log_level": {"type": "enum", "options": ["debug", "info", "warn", "error"], "default": "info"}
}
`,

	"db.yaml": `# db.yaml: подключение к базе
host:
  type: str
  default: localhost
port:
  type: int
  default: 5432
max_open_conns:
  type: int
  default: 25
sampling:
  type: float
  default: 0.1
`,

	"cache.toml": `# cache.toml: настройки кеша

[addr]
type = "ip"
default = "127.0.0.1"

[ttl_seconds]
type = "int"
default = 60

[policy]
type = "enum"
options = ["lru", "lfu"]
default = "lru"
`,
}

// Init создаёт примеры схем в указанной директории, существующие файлы не трогает
func Init(schemasDir string) error {
	if err := os.MkdirAll(schemasDir, 0o755); err != nil {
		return fmt.Errorf("создание директории %s: %w", schemasDir, err)
	}

	names := make([]string, 0, len(initFiles))
	for name := range initFiles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(schemasDir, name)
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("  skip: %s (already exists)\n", name)
			continue
		}
		if err := os.WriteFile(path, []byte(initFiles[name]), 0o644); err != nil {
			return fmt.Errorf("запись %s: %w", name, err)
		}
		fmt.Printf("  created: %s\n", name)
	}

	return nil
}
