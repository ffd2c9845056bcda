// Package gocml builds and serializes Chemical Markup Language (CML)
// documents.
//
// gocml provides:
//
// - A single Node type covering the CML vocabulary (scalar, array,
// parameter, property, parameterList, propertyList, module)
// - Construction-time attribute requirements via RequirementSpec and
// Enforce, reported as Issues (path, code, message, severity)
// - Native value -> xsd type mapping (Classify) and locale-independent text
// rendering (FormatValue)
// - A Document with a per-document namespace table and an XML serializer
//
// Design policy:
// - Nodes are only reachable once fully built; a failing constructor returns
// no node.
// - Convention layers (see conventions/compchem) compose the generic
// vocabulary through role-named factories.
// - Warnings for missing recommended attributes are logged with log/slog and
// kept on the element that produced them.
//
// Typical usage:
//
//	p, err := gocml.NewParameterList(gocml.Descriptor{
//		Value:  []float64{1.5e6, 26782},
//		Attrib: map[string]string{"dictRef": "cc:energies", "units": "nonsi:hartree"},
//	})
//	doc := gocml.New()
//	_ = doc.Append(p)
//	_, err = doc.Serialize(os.Stdout)
package gocml
