package compose

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Compose folds the ordered document sequence into a single build/run
// specification. Sections merge left to right: params overwrite by
// key, env and labels override by key in place, the other argv
// sections append in document order, base_image is last document wins.
// Any document that is not a YAML mapping aborts the whole
// composition; nothing is persisted by this function.
func Compose(docs []Document, configName string) (*Result, error) {
	f := &folder{
		res: &Result{
			Params:    make(map[string]string),
			BaseImage: DefaultBaseImage,
		},
		configName: configName,
		envIndex:   make(map[string]int),
		labelIndex: make(map[string]int),
	}

	for _, doc := range docs {
		if err := f.mergeDocument(doc); err != nil {
			return nil, err
		}
	}

	f.assembleArtifacts(docs)

	return f.res, nil
}

// folder is the accumulator for one left-to-right composition pass.
type folder struct {
	res        *Result
	configName string

	// envIndex and labelIndex map a key to the position of its value
	// slot in RunArgs, so a later document overrides the value without
	// emitting a duplicate flag pair.
	envIndex   map[string]int
	labelIndex map[string]int

	buildParts []string
}

// mergeDocument applies one document's sections to the accumulator.
// Unrecognized sections are ignored so older binaries tolerate newer
// templates.
func (f *folder) mergeDocument(doc Document) error {
	mapping, err := parseMapping(doc)
	if err != nil {
		return err
	}

	if section := findKey(mapping, sectionParams); section != nil {
		if err := f.mergeParams(doc, section); err != nil {
			return err
		}
	}

	if findKey(mapping, sectionBuild) != nil || findKey(mapping, sectionBuildHooks) != nil {
		part, err := buildPart(doc, mapping)
		if err != nil {
			return err
		}
		f.buildParts = append(f.buildParts, part)
	}

	if section := findKey(mapping, sectionEnv); section != nil {
		if err := f.mergeKeyValues(doc, section, sectionEnv, "-e", f.envIndex); err != nil {
			return err
		}
	}

	if section := findKey(mapping, sectionLabels); section != nil {
		if err := f.mergeKeyValues(doc, section, sectionLabels, "-l", f.labelIndex); err != nil {
			return err
		}
	}

	if section := findKey(mapping, sectionExpose); section != nil {
		if err := f.appendExposeFlags(doc, section); err != nil {
			return err
		}
	}

	if section := findKey(mapping, sectionVolumes); section != nil {
		if err := f.appendVolumeFlags(doc, section); err != nil {
			return err
		}
	}

	if section := findKey(mapping, sectionDockerArgs); section != nil {
		if section.Kind != yaml.SequenceNode {
			return fmt.Errorf("%s: %s section is not a list", doc.Name, sectionDockerArgs)
		}
		for _, entry := range section.Content {
			f.res.RunArgs = append(f.res.RunArgs, scalarValue(entry))
		}
	}

	if section := findKey(mapping, sectionBaseImage); section != nil {
		f.res.BaseImage = scalarValue(section)
	}

	return nil
}

// mergeParams shallow-merges a params section into the parameter set.
func (f *folder) mergeParams(doc Document, section *yaml.Node) error {
	if section.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: %s section is not a mapping", doc.Name, sectionParams)
	}

	for i := 0; i+1 < len(section.Content); i += 2 {
		f.res.Params[section.Content[i].Value] = scalarValue(section.Content[i+1])
	}
	return nil
}

// mergeKeyValues handles env and labels: one flag/key=value pair per
// entry in the order the document lists them, with {config} replaced
// by the deployment name. A key seen in an earlier document keeps its
// position but takes the later document's value.
func (f *folder) mergeKeyValues(doc Document, section *yaml.Node, name, flag string, index map[string]int) error {
	if section.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: %s section is not a mapping", doc.Name, name)
	}

	for i := 0; i+1 < len(section.Content); i += 2 {
		key := section.Content[i].Value
		value := strings.ReplaceAll(scalarValue(section.Content[i+1]), configToken, f.configName)

		if at, ok := index[key]; ok {
			f.res.RunArgs[at] = key + "=" + value
			continue
		}

		f.res.RunArgs = append(f.res.RunArgs, flag, key+"="+value)
		index[key] = len(f.res.RunArgs) - 1
	}
	return nil
}

// appendExposeFlags handles expose entries: host=container becomes
// --expose host:container, a bare port becomes -p port.
func (f *folder) appendExposeFlags(doc Document, section *yaml.Node) error {
	if section.Kind != yaml.SequenceNode {
		return fmt.Errorf("%s: %s section is not a list", doc.Name, sectionExpose)
	}

	for _, entry := range section.Content {
		port := scalarValue(entry)
		if host, container, ok := strings.Cut(port, "="); ok {
			f.res.RunArgs = append(f.res.RunArgs, "--expose", host+":"+container)
		} else {
			f.res.RunArgs = append(f.res.RunArgs, "-p", port)
		}
	}
	return nil
}

// appendVolumeFlags handles volumes entries, resolving ./ host paths
// to absolute paths before they reach the engine.
func (f *folder) appendVolumeFlags(doc Document, section *yaml.Node) error {
	if section.Kind != yaml.SequenceNode {
		return fmt.Errorf("%s: %s section is not a list", doc.Name, sectionVolumes)
	}

	for _, entry := range section.Content {
		if entry.Kind != yaml.MappingNode {
			return fmt.Errorf("%s: %s entry is not a mapping", doc.Name, sectionVolumes)
		}

		volume := findKey(entry, "volume")
		if volume == nil || volume.Kind != yaml.MappingNode {
			return fmt.Errorf("%s: %s entry has no volume mapping", doc.Name, sectionVolumes)
		}

		hostNode := findKey(volume, "host")
		guestNode := findKey(volume, "guest")
		if hostNode == nil || guestNode == nil {
			return fmt.Errorf("%s: volume entry needs host and guest", doc.Name)
		}

		host := scalarValue(hostNode)
		if strings.HasPrefix(host, "./") {
			abs, err := filepath.Abs(host)
			if err != nil {
				return fmt.Errorf("%s: resolve volume host path %s: %w", doc.Name, host, err)
			}
			host = abs
		}

		f.res.RunArgs = append(f.res.RunArgs, "-v", host+":"+scalarValue(guestNode))
	}
	return nil
}

// assembleArtifacts substitutes accumulated params into the document
// and build-part texts and joins them into the two artifact bodies.
func (f *folder) assembleArtifacts(docs []Document) {
	seen := make(map[string]bool)
	record := func(missing []string) {
		for _, name := range missing {
			if !seen[name] {
				seen[name] = true
				f.res.Missing = append(f.res.Missing, name)
			}
		}
	}

	initParts := make([]string, len(docs))
	for i, doc := range docs {
		text, missing := Substitute(normalizeNewlines(doc.Raw), f.res.Params)
		record(missing)
		initParts[i] = text
	}

	for i, part := range f.buildParts {
		text, missing := Substitute(normalizeNewlines(part), f.res.Params)
		record(missing)
		f.buildParts[i] = text
	}

	f.res.Init = strings.Join(initParts, Separator)
	f.res.Build = strings.Join(f.buildParts, Separator)
}

// parseMapping parses a document and returns its top-level mapping node.
func parseMapping(doc Document) (*yaml.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(doc.Raw), &root); err != nil {
		return nil, fmt.Errorf("parse %s: %w", doc.Name, err)
	}

	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse %s: document is not a mapping", doc.Name)
	}

	return root.Content[0], nil
}

// buildPart serializes a copy of the whole document with build renamed
// to run and build_hooks renamed to hooks, the shape the in-container
// bootstrap expects. Key order and untouched sections are preserved.
func buildPart(doc Document, mapping *yaml.Node) (string, error) {
	clone := cloneNode(mapping)
	for i := 0; i+1 < len(clone.Content); i += 2 {
		switch clone.Content[i].Value {
		case sectionBuild:
			clone.Content[i].Value = "run"
		case sectionBuildHooks:
			clone.Content[i].Value = "hooks"
		}
	}

	out, err := yaml.Marshal(clone)
	if err != nil {
		return "", fmt.Errorf("serialize build section of %s: %w", doc.Name, err)
	}
	return string(out), nil
}

// findKey returns the value node for key in a mapping node, or nil.
func findKey(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

// scalarValue returns the textual form of a scalar node. YAML null
// becomes the empty string.
func scalarValue(n *yaml.Node) string {
	if n == nil || n.Tag == "!!null" {
		return ""
	}
	return n.Value
}

// cloneNode deep-copies a node tree so renames never touch the parsed
// original.
func cloneNode(n *yaml.Node) *yaml.Node {
	clone := *n
	if len(n.Content) > 0 {
		clone.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			clone.Content[i] = cloneNode(child)
		}
	}
	return &clone
}
