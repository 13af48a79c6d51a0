package advisor

import (
	"fmt"
	"io"
)

// EncodeAnalysisPayload writes the JSON document handed to the advisory
// narrative pipeline: the analytics first, then the investor profile, then
// the policy thresholds. The field order is fixed so prompts built on top of
// the payload stay byte-stable for identical inputs.
//
// Building the payload is the engine's whole contribution to the narrative:
// what consumes it is out of its hands.
func EncodeAnalysisPayload(w io.Writer, a *Analytics, user UserProfile, policy PolicyProfile) error {
	var jw jsonObjectWriter
	jw.Append("analytics", a)
	jw.Append("profile", user)
	jw.Append("policy", policy.Config)

	b, err := jw.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot build analysis payload: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("cannot write analysis payload: %w", err)
	}
	return nil
}
