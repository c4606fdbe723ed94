package models

// Gender is the set of values accepted for Client.Gender.
type Gender string

const (
	GenderMasculine Gender = "Masculine"
	GenderFeminine  Gender = "Feminine"
)

// Client represents a registered customer.
type Client struct {
	ID       uint   `json:"id" gorm:"primaryKey;autoIncrement" example:"1"`
	Name     string `json:"name" gorm:"type:varchar(255);not null" example:"Ana Silva"`
	Code     string `json:"code" gorm:"type:varchar(255);not null" example:"AB12CD34"`
	Document string `json:"document" gorm:"type:varchar(25);uniqueIndex;not null" example:"52998224725"`
	Gender   Gender `json:"gender" gorm:"type:varchar(10);not null;check:gender IN ('Masculine','Feminine')" enums:"Masculine,Feminine" example:"Feminine"`
	Email    string `json:"email" gorm:"type:varchar(255);uniqueIndex;not null" example:"ana@example.com"`
}

// CreateClientInput is the request body accepted when creating a client.
type CreateClientInput struct {
	Name     string `json:"name" example:"Ana Silva"`
	Code     string `json:"code" example:"AB12CD34"`
	Document string `json:"document" example:"52998224725"`
	Gender   Gender `json:"gender" enums:"Masculine,Feminine" example:"Feminine"`
	Email    string `json:"email" example:"ana@example.com"`
}

// ToClient builds the record to be persisted.
func (in CreateClientInput) ToClient() *Client {
	return &Client{
		Name:     in.Name,
		Code:     in.Code,
		Document: in.Document,
		Gender:   in.Gender,
		Email:    in.Email,
	}
}

// UpdateClientInput is a partial update: only fields that are Set are written.
type UpdateClientInput struct {
	Name     Optional[string] `json:"name" swaggertype:"string" example:"Ana Silva"`
	Code     Optional[string] `json:"code" swaggertype:"string" example:"AB12CD34"`
	Document Optional[string] `json:"document" swaggertype:"string" example:"52998224725"`
	Gender   Optional[Gender] `json:"gender" swaggertype:"string" enums:"Masculine,Feminine" example:"Feminine"`
	Email    Optional[string] `json:"email" swaggertype:"string" example:"ana@example.com"`
}

// Changes returns the present fields keyed by column name.
func (in UpdateClientInput) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if in.Name.Set {
		changes["name"] = in.Name.Value
	}
	if in.Code.Set {
		changes["code"] = in.Code.Value
	}
	if in.Document.Set {
		changes["document"] = in.Document.Value
	}
	if in.Gender.Set {
		changes["gender"] = in.Gender.Value
	}
	if in.Email.Set {
		changes["email"] = in.Email.Value
	}
	return changes
}
