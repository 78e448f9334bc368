// Package compose implements the layered template composition engine:
// it loads an ordered sequence of YAML documents, folds their sections
// into a single build/run specification, and produces the init/build
// artifacts consumed by the in-container bootstrap.
package compose

// DefaultBaseImage is the published base image used when no document
// overrides base_image.
const DefaultBaseImage = "discourse/base:2.0.20250715-0020"

// Separator delineates documents inside the persisted artifacts. The
// in-container bootstrap (pups) splits on this exact byte sequence,
// misspelling included.
const Separator = "\n_FILE_SEPERATOR_\n"

// bootstrapDocument is the synthetic first document of every composition.
const bootstrapDocument = "hack: true"

// BootstrapName identifies the synthetic bootstrap document in errors.
const BootstrapName = "<bootstrap>"

// Section names recognized during composition. Unknown sections are
// ignored so older binaries tolerate newer templates.
const (
	sectionTemplates  = "templates"
	sectionParams     = "params"
	sectionEnv        = "env"
	sectionLabels     = "labels"
	sectionExpose     = "expose"
	sectionVolumes    = "volumes"
	sectionDockerArgs = "docker_args"
	sectionBuild      = "build"
	sectionBuildHooks = "build_hooks"
	sectionBaseImage  = "base_image"
)

// configToken is replaced with the deployment name inside env and label
// values.
const configToken = "{config}"

// Document is one member of the ordered composition sequence. Order is
// significant: later documents override or extend earlier ones.
type Document struct {
	// Name is the path the document was loaded from, for diagnostics.
	Name string

	// Raw is the document text exactly as read.
	Raw string
}

// Result is the outcome of composing a document sequence.
type Result struct {
	// Params is the accumulated parameter set, last document wins.
	Params map[string]string

	// RunArgs is the ordered engine argv contributed by env, labels,
	// expose, volumes, and docker_args sections.
	RunArgs []string

	// BaseImage is the resolved base image tag.
	BaseImage string

	// Init is the init artifact text: every document, substituted and
	// separator-joined. Read by the bootstrap at container start.
	Init string

	// Build is the build artifact text: the build parts, substituted
	// and separator-joined. Read during image build.
	Build string

	// Missing lists $tokens that had no parameter, in first-seen order.
	Missing []string
}
