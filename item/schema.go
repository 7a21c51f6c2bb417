package item

import (
	"reflect"

	"github.com/invopop/jsonschema"
)

// DefinitionDocument models the designer-authored catalog entry format.
// It is the concrete shape of one element of a catalog file: string keys,
// string slot tags and free-form user data. It is shared with the schema
// builder so editor tooling can validate catalog files.
type DefinitionDocument struct {
	Key               string         `json:"key" jsonschema:"title=Item key,description=Unique identifier for the item"`
	SlotType          string         `json:"slotType,omitempty" jsonschema:"title=Slot type,description=Capability tag deciding which slots accept the item"`
	Name              string         `json:"name" jsonschema:"title=Name,description=Internal display name"`
	FriendlyName      string         `json:"friendlyName,omitempty" jsonschema:"title=Friendly name,description=Player facing display name"`
	Description       string         `json:"description,omitempty" jsonschema:"description=Player facing description"`
	MaximumStack      *int           `json:"maximumStack,omitempty" jsonschema:"minimum=1,description=Per-stack unit cap; omit for unlimited"`
	MaximumDurability *int           `json:"maximumDurability,omitempty" jsonschema:"minimum=0,description=Starting durability; omit for unbreakable"`
	UserData          map[string]any `json:"userData,omitempty" jsonschema:"description=Application defined extension data"`
}

// CatalogDocument represents the contents of a whole catalog file: the
// canonical array format authored by designers.
type CatalogDocument []DefinitionDocument

// BuildCatalogSchema produces a machine-readable JSON schema for catalog
// entries, for validation and editor tooling.
func BuildCatalogSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := reflector.ReflectFromType(reflect.TypeOf(DefinitionDocument{}))
	schema.Title = "Item Catalog Entry"
	schema.Description = "Designer-authored item definition consumed by the catalog loader."
	return schema
}
