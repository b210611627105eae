package matrix

// Entry is one build configuration handed to the CI orchestrator.
//
// Fields are declared in the byte order of their JSON keys so encoded
// objects come out key-sorted, keeping the emitted document stable across
// runs. FLAGS is ordered: the workflow passes it positionally to make.
type Entry struct {
	CC     string   `json:"CC"`
	Flags  []string `json:"FLAGS"`
	Target string   `json:"TARGET"`
	Name   string   `json:"name"`
	OS     string   `json:"os"`
	SSL    string   `json:"ssl,omitempty"`
}
