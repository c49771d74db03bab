package json

import (
	"bytes"
	sysjson "encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

var jiter = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal same as encoding/json
func Marshal(v interface{}) ([]byte, error) {
	return jiter.Marshal(v)
}

// MarshalIndent with tab indent
func MarshalIndent(v interface{}) ([]byte, error) {
	data, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err = sysjson.Indent(&out, data, "", "\t"); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Unmarshal same as encoding/json
func Unmarshal(data []byte, v interface{}) error {
	return jiter.Unmarshal(data, v)
}

// UnmarshalFile decode json file into v
func UnmarshalFile(filename string, v interface{}) error {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return err
	}
	return Unmarshal(data, v)
}

// WriteFile encode v with indent, parent directories are created
func WriteFile(filename string, v interface{}) error {
	data, err := MarshalIndent(v)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(filename); dir != "" {
		if err = os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return ioutil.WriteFile(filename, data, 0644)
}
