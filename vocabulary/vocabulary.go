// Package vocabulary provides well-known RDF namespaces and helpers for
// minting terms inside them.
package vocabulary

import "github.com/c360studio/semworld/rdf"

// Namespace is an IRI prefix. Terms are minted under it by plain
// concatenation, so hash namespaces end in '#' and slash namespaces in
// '/'.
type Namespace string

// String returns the base IRI.
func (n Namespace) String() string { return string(n) }

// Term returns the named resource for local inside the namespace.
func (n Namespace) Term(local string) rdf.NamedResource {
	return rdf.NewNamedResource(string(n) + local)
}

// Helper returns a function that mints terms in the namespace, for
// callers building many terms from the same vocabulary.
func (n Namespace) Helper() func(string) rdf.NamedResource {
	return func(local string) rdf.NamedResource {
		return n.Term(local)
	}
}

// Well-known namespaces.
const (
	// RDF is the RDF syntax namespace.
	RDF Namespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFS is the RDF Schema namespace.
	RDFS Namespace = "http://www.w3.org/2000/01/rdf-schema#"

	// XSD is the XML Schema datatypes namespace.
	XSD Namespace = "http://www.w3.org/2001/XMLSchema#"

	// OWL is the Web Ontology Language namespace.
	OWL Namespace = "http://www.w3.org/2002/07/owl#"

	// SKOS is the Simple Knowledge Organization System namespace.
	SKOS Namespace = "http://www.w3.org/2004/02/skos/core#"

	// DC is the Dublin Core elements namespace.
	DC Namespace = "http://purl.org/dc/elements/1.1/"

	// DCTerms is the Dublin Core terms namespace.
	DCTerms Namespace = "http://purl.org/dc/terms/"

	// FOAF is the Friend of a Friend namespace.
	FOAF Namespace = "http://xmlns.com/foaf/0.1/"

	// Schema is the Schema.org namespace.
	Schema Namespace = "https://schema.org/"
)

// Prefixes maps the conventional prefix names to their namespaces.
var Prefixes = map[string]Namespace{
	"rdf":     RDF,
	"rdfs":    RDFS,
	"xsd":     XSD,
	"owl":     OWL,
	"skos":    SKOS,
	"dc":      DC,
	"dcterms": DCTerms,
	"foaf":    FOAF,
	"schema":  Schema,
}

// Lookup returns the namespace registered under the prefix name.
func Lookup(prefix string) (Namespace, bool) {
	ns, ok := Prefixes[prefix]
	return ns, ok
}

// ApplyPrefixes registers every well-known prefix on the store so
// serialized output compacts these namespaces.
func ApplyPrefixes(s *rdf.Store) {
	for name, ns := range Prefixes {
		s.SetPrefix(name, string(ns))
	}
}

// Terms shared across vocabularies.
var (
	// Type is rdf:type.
	Type = RDF.Term("type")

	// Label is rdfs:label.
	Label = RDFS.Term("label")

	// Comment is rdfs:comment.
	Comment = RDFS.Term("comment")

	// PrefLabel is skos:prefLabel.
	PrefLabel = SKOS.Term("prefLabel")

	// Name is foaf:name.
	Name = FOAF.Term("name")

	// Title is dc:title.
	Title = DC.Term("title")

	// Created is dcterms:created.
	Created = DCTerms.Term("created")
)
