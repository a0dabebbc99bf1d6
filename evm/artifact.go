package evm

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/tidwall/gjson"
)

var ErrNoBytecode = errors.New("artifact has no bytecode")

// Artifact is the compiled form of a contract, read from a Hardhat/Foundry
// style artifact JSON file.
type Artifact struct {
	Kind     Kind
	Bytecode []byte
}

// LoadArtifact reads a single artifact file. Only the "abi" and "bytecode"
// fields are consumed; everything else in the artifact is ignored.
func LoadArtifact(name, path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	abiJSON := gjson.GetBytes(data, "abi")
	if !abiJSON.Exists() {
		return nil, fmt.Errorf("artifact %s: missing abi", path)
	}

	kind, err := NewKind(name, abiJSON.Raw)
	if err != nil {
		return nil, err
	}

	bytecodeField := gjson.GetBytes(data, "bytecode")
	code := bytecodeField.String()
	if bytecodeField.IsObject() {
		// foundry nests it one level deeper
		code = bytecodeField.Get("object").String()
	}
	if code == "" || code == "0x" {
		return nil, fmt.Errorf("artifact %s: %w", path, ErrNoBytecode)
	}

	bytecode, err := hexutil.Decode(code)
	if err != nil {
		return nil, fmt.Errorf("artifact %s: decode bytecode: %w", path, err)
	}

	return &Artifact{Kind: kind, Bytecode: bytecode}, nil
}

// ArtifactDir resolves contract kinds to compiled artifacts under a directory
// of <Name>.json files.
type ArtifactDir struct {
	dir string
}

func NewArtifactDir(dir string) *ArtifactDir {
	return &ArtifactDir{dir: dir}
}

func (d *ArtifactDir) Load(name string) (*Artifact, error) {
	return LoadArtifact(name, filepath.Join(d.dir, name+".json"))
}
