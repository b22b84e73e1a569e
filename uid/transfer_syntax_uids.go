package uid

// Transfer syntax UIDs the core needs to classify pixel data as
// encapsulated or native — see nonEncapsulated in uid.go. DICOM defines
// dozens more (one per compression scheme), but nothing in this module
// distinguishes between them: IsEncapsulated only needs to tell "one of
// these four native syntaxes" apart from "anything else."
var (
	// Implicit VR Little Endian
	ImplicitVRLittleEndian = MustParse("1.2.840.10008.1.2")

	// Explicit VR Little Endian
	ExplicitVRLittleEndian = MustParse("1.2.840.10008.1.2.1")

	// Deflated Explicit VR Little Endian
	DeflatedExplicitVRLittleEndian = MustParse("1.2.840.10008.1.2.1.99")

	// Explicit VR Big Endian (RETIRED)
	//
	// Deprecated: This UID has been retired from the DICOM standard.
	ExplicitVRBigEndian = MustParse("1.2.840.10008.1.2.2")
)
