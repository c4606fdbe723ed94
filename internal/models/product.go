package models

// Fabrication tells where a product was made.
type Fabrication string

const (
	FabricationNational Fabrication = "National"
	FabricationImported Fabrication = "Imported"
)

// Product represents an item in the catalog.
type Product struct {
	ID          uint        `json:"id" gorm:"primaryKey;autoIncrement" example:"1"`
	Code        string      `json:"code" gorm:"type:varchar(255);uniqueIndex;not null" example:"CH-01"`
	Name        string      `json:"name" gorm:"type:varchar(255);not null" example:"Chair"`
	Fabrication Fabrication `json:"fabrication" gorm:"type:varchar(10);not null;check:fabrication IN ('National','Imported')" enums:"National,Imported" example:"National"`
	Size        float64     `json:"size" gorm:"not null" example:"1.2"`
	Value       float64     `json:"value" gorm:"not null;default:0" example:"42.5"`
}

// CreateProductInput is the request body accepted when creating a product.
// Value is 0 when omitted.
type CreateProductInput struct {
	Code        string      `json:"code" example:"CH-01"`
	Name        string      `json:"name" example:"Chair"`
	Fabrication Fabrication `json:"fabrication" enums:"National,Imported" example:"National"`
	Size        float64     `json:"size" example:"1.2"`
	Value       float64     `json:"value" example:"42.5"`
}

// ToProduct builds the record to be persisted.
func (in CreateProductInput) ToProduct() *Product {
	return &Product{
		Code:        in.Code,
		Name:        in.Name,
		Fabrication: in.Fabrication,
		Size:        in.Size,
		Value:       in.Value,
	}
}

// UpdateProductInput is a partial update: only fields that are Set are written.
type UpdateProductInput struct {
	Code        Optional[string]      `json:"code" swaggertype:"string" example:"CH-01"`
	Name        Optional[string]      `json:"name" swaggertype:"string" example:"Chair"`
	Fabrication Optional[Fabrication] `json:"fabrication" swaggertype:"string" enums:"National,Imported" example:"National"`
	Size        Optional[float64]     `json:"size" swaggertype:"number" example:"1.2"`
	Value       Optional[float64]     `json:"value" swaggertype:"number" example:"42.5"`
}

// Changes returns the present fields keyed by column name.
func (in UpdateProductInput) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if in.Code.Set {
		changes["code"] = in.Code.Value
	}
	if in.Name.Set {
		changes["name"] = in.Name.Value
	}
	if in.Fabrication.Set {
		changes["fabrication"] = in.Fabrication.Value
	}
	if in.Size.Set {
		changes["size"] = in.Size.Value
	}
	if in.Value.Set {
		changes["value"] = in.Value.Value
	}
	return changes
}

// AffectedResult is returned by update and delete operations.
type AffectedResult struct {
	Affected int64 `json:"affected" example:"1"`
}
