package report

import (
	"encoding/json"
	"fmt"

	"github.com/sodatea/berry/message"
)

// Structured mode: every event becomes one self-contained JSON record per
// line. No classification, no collapsing, no terminal control sequences.

type record struct {
	Type        string `json:"type"`
	Name        int    `json:"name"`
	DisplayName string `json:"displayName"`
	Indent      string `json:"indent"`
	Data        string `json:"data"`
}

func (it *Stream) emitRecordLocked(sev severity, name message.Name, text string) {
	payload, err := json.Marshal(record{
		Type:        sev.String(),
		Name:        int(name),
		DisplayName: name.Label(),
		Indent:      it.indentLocked(),
		Data:        text,
	})
	if err != nil {
		// Records are plain strings and integers, this cannot happen.
		return
	}
	fmt.Fprintln(it.opts.Out, string(payload))
}
