package model

// Items is the fixed set of screening-participation flags attached to a
// person record. Flags absent from a stored document decode as false.
type Items struct {
	HealthCheck   bool `bson:"health_check" json:"healthCheck"`
	BC            bool `bson:"bc" json:"bc"`
	PapSmear      bool `bson:"pap_smear" json:"papSmear"`
	HPV           bool `bson:"hpv" json:"hpv"`
	ColonScreen   bool `bson:"colon_screen" json:"colonScreen"`
	OralScreen    bool `bson:"oral_screen" json:"oralScreen"`
	ICP           bool `bson:"icp" json:"icp"`
	GastricCancer bool `bson:"gastric_cancer" json:"gastricCancer"`
}

// ItemsPatch is a partial update of the screening flags. Nil pointers mean
// "leave the stored value untouched"; the fixed field set rejects unknown
// flag names at decode time.
type ItemsPatch struct {
	HealthCheck   *bool `json:"healthCheck,omitempty"`
	BC            *bool `json:"bc,omitempty"`
	PapSmear      *bool `json:"papSmear,omitempty"`
	HPV           *bool `json:"hpv,omitempty"`
	ColonScreen   *bool `json:"colonScreen,omitempty"`
	OralScreen    *bool `json:"oralScreen,omitempty"`
	ICP           *bool `json:"icp,omitempty"`
	GastricCancer *bool `json:"gastricCancer,omitempty"`
}

// Merge overlays the set flags of the patch onto the receiver and returns the
// result. Unset flags keep their previous values.
func (i Items) Merge(patch ItemsPatch) Items {
	merged := i
	if patch.HealthCheck != nil {
		merged.HealthCheck = *patch.HealthCheck
	}
	if patch.BC != nil {
		merged.BC = *patch.BC
	}
	if patch.PapSmear != nil {
		merged.PapSmear = *patch.PapSmear
	}
	if patch.HPV != nil {
		merged.HPV = *patch.HPV
	}
	if patch.ColonScreen != nil {
		merged.ColonScreen = *patch.ColonScreen
	}
	if patch.OralScreen != nil {
		merged.OralScreen = *patch.OralScreen
	}
	if patch.ICP != nil {
		merged.ICP = *patch.ICP
	}
	if patch.GastricCancer != nil {
		merged.GastricCancer = *patch.GastricCancer
	}
	return merged
}

// SetFlags returns the flags present in the patch keyed by their stored
// (bson) field names. The store uses this to build dotted update paths so an
// upsert only touches the supplied flags.
func (p ItemsPatch) SetFlags() map[string]bool {
	flags := map[string]bool{}
	if p.HealthCheck != nil {
		flags["health_check"] = *p.HealthCheck
	}
	if p.BC != nil {
		flags["bc"] = *p.BC
	}
	if p.PapSmear != nil {
		flags["pap_smear"] = *p.PapSmear
	}
	if p.HPV != nil {
		flags["hpv"] = *p.HPV
	}
	if p.ColonScreen != nil {
		flags["colon_screen"] = *p.ColonScreen
	}
	if p.OralScreen != nil {
		flags["oral_screen"] = *p.OralScreen
	}
	if p.ICP != nil {
		flags["icp"] = *p.ICP
	}
	if p.GastricCancer != nil {
		flags["gastric_cancer"] = *p.GastricCancer
	}
	return flags
}

// Person is the stored entity, keyed by the unique national ID. The store
// enforces uniqueness of IDNumber with a unique index.
type Person struct {
	IDNumber    string `bson:"id_number" json:"idNumber"`
	Name        string `bson:"name" json:"name"`
	Birth       string `bson:"birth" json:"birth"`
	Education   string `bson:"education" json:"education"`
	Phone       string `bson:"phone" json:"phone"`
	Address     string `bson:"address" json:"address"`
	DateUpdated string `bson:"date_updated" json:"dateUpdated"`
	Items       Items  `bson:"items" json:"items"`
}

// UpsertPersonRequest is the POST /person body. Profile fields overwrite the
// stored values; Items is merged flag by flag.
type UpsertPersonRequest struct {
	IDNumber  string     `json:"idNumber"`
	Name      string     `json:"name"`
	Birth     string     `json:"birth"`
	Education string     `json:"education"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address"`
	Items     ItemsPatch `json:"items"`
}

// GetPersonResponse is the GET /person/{idNumber} body.
type GetPersonResponse struct {
	Name      string `json:"name"`
	Birth     string `json:"birth"`
	Education string `json:"education"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Items     Items  `json:"items"`
}
