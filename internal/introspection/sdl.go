package introspection

import (
	"regexp"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

var sdlSignature = regexp.MustCompile(`(?m)^\s*(type|interface|enum|union|input|scalar|schema|directive|extend)\b`)

// LooksLikeSDL reports whether the payload resembles GraphQL SDL text.
func LooksLikeSDL(raw []byte) bool {
	if len(raw) == 0 {
		return false
	}
	return sdlSignature.Match(raw)
}

// ParseSDL converts GraphQL SDL into the same Document shape an
// introspection result decodes to, so both inputs traverse identically.
// The SDL is parsed without validation: partial schemas are expected and
// unresolved references degrade to leaves during traversal.
func ParseSDL(raw []byte) (*Document, error) {
	schemaDoc, err := parser.ParseSchema(&ast.Source{Name: "schema.graphql", Input: string(raw)})
	if err != nil {
		return nil, &MalformedSchemaError{Reason: "invalid SDL", Err: err}
	}

	kinds := map[string]string{
		"String": "SCALAR", "Int": "SCALAR", "Float": "SCALAR",
		"Boolean": "SCALAR", "ID": "SCALAR",
	}
	for _, def := range schemaDoc.Definitions {
		kinds[def.Name] = string(def.Kind)
	}

	doc := &Document{}
	for _, def := range schemaDoc.Definitions {
		t := Type{
			Kind:        string(def.Kind),
			Name:        def.Name,
			Description: def.Description,
		}
		switch def.Kind {
		case ast.InputObject:
			for _, f := range def.Fields {
				t.InputFields = append(t.InputFields, InputValue{
					Name: f.Name,
					Type: refFromAST(f.Type, kinds),
				})
			}
		default:
			for _, f := range def.Fields {
				field := Field{
					Name:        f.Name,
					Description: f.Description,
					Type:        refFromAST(f.Type, kinds),
				}
				for _, arg := range f.Arguments {
					field.Args = append(field.Args, InputValue{
						Name: arg.Name,
						Type: refFromAST(arg.Type, kinds),
					})
				}
				t.Fields = append(t.Fields, field)
			}
		}
		for _, ev := range def.EnumValues {
			t.EnumValues = append(t.EnumValues, EnumValue{Name: ev.Name})
		}
		doc.Types = append(doc.Types, t)
	}

	for _, sd := range schemaDoc.Schema {
		for _, op := range sd.OperationTypes {
			ref := &TypeRef{Kind: kinds[op.Type], Name: op.Type}
			switch op.Operation {
			case ast.Query:
				doc.QueryType = ref
			case ast.Mutation:
				doc.MutationType = ref
			}
		}
	}
	if doc.QueryType == nil {
		if kind, ok := kinds["Query"]; ok && kind == "OBJECT" {
			doc.QueryType = &TypeRef{Kind: "OBJECT", Name: "Query"}
		}
	}
	return doc, nil
}

func refFromAST(t *ast.Type, kinds map[string]string) TypeRef {
	if t == nil {
		return TypeRef{}
	}
	var ref TypeRef
	if t.Elem != nil {
		inner := refFromAST(t.Elem, kinds)
		ref = TypeRef{Kind: "LIST", OfType: &inner}
	} else {
		kind, ok := kinds[t.NamedType]
		if !ok {
			kind = "SCALAR"
		}
		ref = TypeRef{Kind: kind, Name: t.NamedType}
	}
	if t.NonNull {
		wrapped := ref
		ref = TypeRef{Kind: "NON_NULL", OfType: &wrapped}
	}
	return ref
}
