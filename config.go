package rustedbrain

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	bf "nickandperla.net/brainfuck"
)

type ToolConfig struct {
	Machine     *MachineSettings   `toml:"machine"`
	Persistence *PersistenceConfig `toml:"persistence"`
	Eval        *EvaluatorConfig   `toml:"eval"`
}

type MachineSettings struct {
	CellCount                    uint `toml:"cell_count"`
	MaxInstructionExecutionCount uint `toml:"max_instruction_execution_count"`
}

func (ms *MachineSettings) ToMachineConfig() *bf.MachineConfig {
	return &bf.MachineConfig{
		MaxInstructionExecutionCount: ms.MaxInstructionExecutionCount,
		MemoryConfig:                 &bf.MemoryConfig{CellCount: ms.CellCount},
	}
}

func DefaultToolConfig() *ToolConfig {
	return &ToolConfig{
		Machine: &MachineSettings{
			CellCount:                    bf.DEFAULT_CELL_COUNT,
			MaxInstructionExecutionCount: 0,
		},
		Persistence: &PersistenceConfig{
			Name:          "rustedbrain.db",
			Path:          ".",
			SQLitePragmas: []string{"journal_mode=WAL"},
		},
	}
}

func LoadToolConfig(path string) (*ToolConfig, error) {
	conffile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Unable to load rustedbrain config: %v", err)
	}
	defer conffile.Close()

	config := DefaultToolConfig()
	if _, err := toml.NewDecoder(conffile).Decode(config); err != nil {
		return nil, fmt.Errorf("Failed to unmarshal tool config: %v", err)
	}
	return config, nil
}
