package cmdargs

import "encoding/json"

// Document is a serializable representation of a Store
type Document struct {
	Script    string        `json:"script,omitempty" yaml:"script,omitempty"`
	Arguments []DocumentArg `json:"arguments" yaml:"arguments"`
}

type DocumentArg struct {
	Position int    `json:"position" yaml:"position"`
	Name     string `json:"name,omitempty" yaml:"name,omitempty"`
	// Value is encoded as bool true for flags and as string otherwise
	Value Value `json:"value" yaml:"value"`
}

func (s *Store) Document() Document {
	doc := Document{
		Script:    s.script,
		Arguments: make([]DocumentArg, 0, len(s.values)),
	}
	for i, v := range s.All() {
		doc.Arguments = append(doc.Arguments, DocumentArg{
			Position: i,
			Name:     s.posToName[i],
			Value:    v,
		})
	}
	return doc
}

func (s *Store) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Document())
}

func (s *Store) MarshalYAML() (any, error) {
	return s.Document(), nil
}
