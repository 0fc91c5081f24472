package signalgen

import "fmt"

// EOTF identifies the electro-optical transfer function signalled in HDR
// static metadata, per CEA 861.3
type EOTF int

// CEA 861.3 EOTF types. Values above HLG are reserved but still legal to
// signal (0-7).
const (
	EOTFTraditionalSDR EOTF = 0
	EOTFTraditionalHDR EOTF = 1
	EOTFPQ             EOTF = 2
	EOTFHLG            EOTF = 3
)

func (e EOTF) String() string {
	switch e {
	case EOTFTraditionalSDR:
		return "Traditional SDR"
	case EOTFTraditionalHDR:
		return "Traditional HDR"
	case EOTFPQ:
		return "PQ (ST 2084)"
	case EOTFHLG:
		return "HLG"
	default:
		return fmt.Sprintf("Reserved (%d)", int(e))
	}
}

// HDRMetadata is the static HDR metadata attached to scheduled frames
type HDRMetadata struct {
	EOTF    EOTF
	MaxCLL  uint16 // maximum content light level, cd/m2
	MaxFALL uint16 // maximum frame-average light level, cd/m2
}

// Validate checks the EOTF is within the CEA 861.3 range
func (m HDRMetadata) Validate() error {
	if m.EOTF < 0 || m.EOTF > 7 {
		return fmt.Errorf("eotf %d outside CEA 861.3 range 0-7", int(m.EOTF))
	}
	return nil
}
