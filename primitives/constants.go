package primitives

// Frozen, consensus-visible constants (spec §6). Changing any of these
// bumps the corresponding engine version and is a hard fork.
const (
	ObexAlphaIVersion   = 1
	ObexAlphaIIVersion  = 2
	ObexAlphaIIIVersion = 1
	ObexAlphaTVersion   = 1

	ChallengesQ = 96
	LabelBytes  = 32
	// NLabelsExp is the exponent: the dataset has 2^NLabelsExp labels.
	NLabelsExp = 27
	NLabels    = uint64(1) << NLabelsExp // 134_217_728
	Passes     = 3
	MemMiB     = 512

	MaxPartRecSize = 600_000

	MaxPiLen  = 1024
	MaxEllLen = 64

	MinTxUobx      = 1
	FlatFeeUobx    = 1000
	FlatSwitchUobx = 1_000_000

	TotalSupplyUobx      = 21_000_000_000_000
	SlotsPerProtocolYear = 31_557_600
	LastEmissionSlot     = 1_325_419_200

	// MerkleDepth is the fixed depth of a participation dataset Merkle
	// path: log2(NLabels).
	MerkleDepth = NLabelsExp
)
