package rustedbrain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"

	bf "nickandperla.net/brainfuck"
)

const TEST_CONFIG = `
[machine]
cell_count = 500
max_instruction_execution_count = 100000

[persistence]
name = "runs.db"
path = "/data"
sqlite_pragmas = ["journal_mode=WAL"]
sqlite_options = ["cache=shared"]

[eval]
expected_path = "expected.txt"
`

func TestDecodeToolConfig(t *testing.T) {
	var config ToolConfig
	if _, err := toml.Decode(TEST_CONFIG, &config); err != nil {
		t.Fatalf("Failed to unmarshal tool config: %v", err)
	}

	if config.Machine.CellCount != 500 {
		t.Errorf("CellCount [%d] doesn't match expected [500]", config.Machine.CellCount)
	}

	if config.Machine.MaxInstructionExecutionCount != 100000 {
		t.Errorf("MaxInstructionExecutionCount [%d] doesn't match expected [100000]", config.Machine.MaxInstructionExecutionCount)
	}

	if config.Persistence.Name != "runs.db" || config.Persistence.Path != "/data" {
		t.Errorf("Persistence config doesn't match: %+v", config.Persistence)
	}

	if len(config.Persistence.SQLitePragmas) != 1 || config.Persistence.SQLitePragmas[0] != "journal_mode=WAL" {
		t.Errorf("SQLitePragmas don't match: %v", config.Persistence.SQLitePragmas)
	}

	if config.Eval.ExpectedPath != "expected.txt" {
		t.Errorf("ExpectedPath [%s] doesn't match expected [expected.txt]", config.Eval.ExpectedPath)
	}

	mc := config.Machine.ToMachineConfig()
	if mc.MemoryConfig.CellCount != 500 || mc.MaxInstructionExecutionCount != 100000 {
		t.Errorf("ToMachineConfig doesn't carry settings over: %+v", mc)
	}
}

func TestDefaultToolConfig(t *testing.T) {
	config := DefaultToolConfig()

	if config.Machine.CellCount != bf.DEFAULT_CELL_COUNT {
		t.Errorf("Default CellCount [%d] doesn't match [%d]", config.Machine.CellCount, bf.DEFAULT_CELL_COUNT)
	}

	if config.Machine.MaxInstructionExecutionCount != 0 {
		t.Errorf("Default MaxInstructionExecutionCount [%d] isn't unlimited [0]", config.Machine.MaxInstructionExecutionCount)
	}

	if config.Persistence.Name == "" || config.Persistence.Path == "" {
		t.Errorf("Default persistence config is incomplete: %+v", config.Persistence)
	}
}

func TestLoadToolConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(TEST_CONFIG), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	config, err := LoadToolConfig(path)
	if err != nil {
		t.Fatalf("Unexpected failure calling LoadToolConfig. %v", err)
	}

	if config.Machine.CellCount != 500 {
		t.Errorf("CellCount [%d] doesn't match expected [500]", config.Machine.CellCount)
	}

	if _, err := LoadToolConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("Unexpected success calling LoadToolConfig with a missing file")
	}
}
