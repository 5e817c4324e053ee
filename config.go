/*
http://www.apache.org/licenses/LICENSE-2.0.txt


Copyright 2026 Michael Franzl

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package captainhook

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/ghodss/yaml"
)

// Default names for the four operations and the public store.
const (
	DefaultRegisterName   = "on"
	DefaultOnceName       = "once"
	DefaultDeregisterName = "off"
	DefaultEmitName       = "_emit"
	DefaultStorageName    = "_handlers"
)

// PrivateStorage, given as a Config's StorageName, selects the
// privately scoped storage policy: the factory closes over a single
// store shared by every host composed with that mixin instance,
// instead of attaching a named store to each host. It is distinct from
// the empty string, which still means "use the default public name".
const PrivateStorage = "<private>"

// Config names the four operations exposed by a mixin and selects its
// storage policy. All fields are optional; empty fields take the
// defaults above. The names must be distinct from each other — no
// validation is performed and colliding names silently overwrite.
type Config struct {
	RegisterName   string `json:"register_name"`
	OnceName       string `json:"once_name"`
	DeregisterName string `json:"deregister_name"`
	EmitName       string `json:"emit_name"`
	StorageName    string `json:"storage_name"`
}

func (c *Config) applyDefaults() {
	if c.RegisterName == "" {
		c.RegisterName = DefaultRegisterName
	}
	if c.OnceName == "" {
		c.OnceName = DefaultOnceName
	}
	if c.DeregisterName == "" {
		c.DeregisterName = DefaultDeregisterName
	}
	if c.EmitName == "" {
		c.EmitName = DefaultEmitName
	}
	if c.StorageName == "" {
		c.StorageName = DefaultStorageName
	}
}

// ReadConfig reads a naming configuration file, parsing it (as YAML or
// JSON) into a Config. Empty fields are resolved to the defaults when
// the Config is handed to New.
func ReadConfig(path string) (*Config, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := &Config{}
	// A JSON string is a valid YAML string (the converse is not true),
	// so one yaml.Unmarshal covers both formats.
	if parseErr := yaml.Unmarshal(b, c); parseErr != nil {
		// Trim the YAML- or JSON-specific prefix the unmarshaler may
		// have added; an unmatched message passes through unchanged.
		tmpErr := strings.TrimPrefix(parseErr.Error(), "error converting YAML to JSON: yaml: ")
		errRet := strings.TrimPrefix(tmpErr, "error unmarshaling JSON: json: ")
		return nil, fmt.Errorf("Error while parsing configuration file: %v", errRet)
	}
	return c, nil
}
