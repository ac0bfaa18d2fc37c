package tracing

// Span attribute keys for resolution tracing.
// These constants define the semantic conventions for span attributes
// emitted while assembling trees.
const (
	// Descriptor attributes
	AttrDescriptor     = "resolve.descriptor"
	AttrDescriptorKind = "resolve.descriptor.kind"

	// Node attributes
	AttrNodeKey      = "resolve.node.key"
	AttrNodeChildren = "resolve.node.children"
	AttrNodeSize     = "resolve.node.size"
	AttrValueType    = "resolve.value.type"

	// Run attributes
	AttrRunID       = "run.id"
	AttrRunRoot     = "run.root"
	AttrManifestDir = "manifest.dir"

	// Lookup attributes
	AttrLookupOutcome = "lookup.outcome"

	// Error attributes
	AttrErrorMessage = "error.message"
	AttrErrorType    = "error.type"
)

// Descriptor kind values for AttrDescriptorKind.
const (
	DescriptorKindName = "name"
	DescriptorKindType = "type"
)

// Lookup outcome values for AttrLookupOutcome.
const (
	LookupOutcomeOK        = "ok"
	LookupOutcomeNotFound  = "not_found"
	LookupOutcomeAmbiguous = "ambiguous"
	LookupOutcomeError     = "error"
)

// Span names for consistent naming.
const (
	SpanResolveNode = "resolve.node"
	SpanResolveRun  = "resolve.run"
)

// Event names for span events.
const (
	EventLookup = "registry.lookup"
)
