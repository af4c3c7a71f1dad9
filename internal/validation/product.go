package validation

// ProductInput is the coerced, validated shape of a product payload.
// Every field is optional at this level; create-time requirements are
// enforced by ValidateProduct.
type ProductInput struct {
	Name          *string  `validate:"omitempty,min=1"`
	Description   *string
	Price         *float64 `validate:"omitempty,gt=0"`
	Stock         *int     `validate:"omitempty,gte=0"`
	Gender        *string
	ImageURL      *string  `validate:"omitempty,url"`
	ImagePublicID *string
	Brand         *string
	CategoryID    *uint    `validate:"omitempty,gt=0"`
	Sizes         []string
	IsOnSale      *bool
	SalePrice     *float64 `validate:"omitempty,gt=0"`
}

// Struct field -> {API field, message} for failed range/shape tags
var productMessages = map[string][2]string{
	"Name":       {"name", "Name is required"},
	"Price":      {"price", "Price must be positive"},
	"Stock":      {"stock", "Stock must be non-negative"},
	"ImageURL":   {"imageUrl", "Invalid image URL"},
	"CategoryID": {"categoryId", "Invalid category ID"},
	"SalePrice":  {"salePrice", "Sale price must be positive"},
}

// ValidateProduct coerces and validates a raw product payload. With
// partial set, every field is optional (update semantics); otherwise name
// and price are required (create semantics). All field errors are
// accumulated and returned together.
func ValidateProduct(raw map[string]any, partial bool) (*ProductInput, FieldErrors) {
	in := &ProductInput{}
	errs := FieldErrors{}

	if v, present := raw["name"]; present && v != nil {
		if s, ok := coerceString(v); ok {
			in.Name = &s
		} else {
			errs.Add("name", "Name must be a string")
		}
	}
	if v, present := raw["description"]; present && v != nil {
		if s, ok := coerceString(v); ok {
			in.Description = &s
		} else {
			errs.Add("description", "Description must be a string")
		}
	}
	if v, present := raw["price"]; present && v != nil {
		if f, ok := coerceNumber(v); ok {
			in.Price = &f
		} else {
			errs.Add("price", "Price must be a number")
		}
	}
	if v, present := raw["stock"]; present && v != nil {
		if n, ok := coerceInt(v); ok {
			in.Stock = &n
		} else {
			errs.Add("stock", "Stock must be an integer")
		}
	}
	if v, present := raw["gender"]; present && v != nil {
		if s, ok := coerceString(v); ok {
			in.Gender = &s
		} else {
			errs.Add("gender", "Gender must be a string")
		}
	}
	if v, present := raw["imageUrl"]; present && v != nil {
		if s, ok := coerceString(v); ok {
			in.ImageURL = &s
		} else {
			errs.Add("imageUrl", "Invalid image URL")
		}
	}
	if v, present := raw["imagePublicId"]; present && v != nil {
		if s, ok := coerceString(v); ok {
			in.ImagePublicID = &s
		} else {
			errs.Add("imagePublicId", "Image public ID must be a string")
		}
	}
	if v, present := raw["brand"]; present && v != nil {
		if s, ok := coerceString(v); ok {
			in.Brand = &s
		} else {
			errs.Add("brand", "Brand must be a string")
		}
	}
	if v, present := raw["categoryId"]; present && v != nil {
		if n, ok := coerceInt(v); ok && n >= 0 {
			u := uint(n)
			in.CategoryID = &u
		} else {
			errs.Add("categoryId", "Invalid category ID")
		}
	}
	if v, present := raw["sizes"]; present && v != nil {
		if s, ok := coerceStringSlice(v); ok {
			in.Sizes = s
		} else {
			errs.Add("sizes", "Sizes must be an array of strings")
		}
	}
	if v, present := raw["isOnSale"]; present && v != nil {
		if b, ok := coerceBool(v); ok {
			in.IsOnSale = &b
		} else {
			errs.Add("isOnSale", "isOnSale must be a boolean")
		}
	}
	if v, present := raw["salePrice"]; present && v != nil {
		if f, ok := coerceNumber(v); ok {
			in.SalePrice = &f
		} else {
			errs.Add("salePrice", "Sale price must be a number")
		}
	}

	// Create requires name and price; updates are fully partial
	if !partial {
		if in.Name == nil && len(errs["name"]) == 0 {
			errs.Add("name", "Name is required")
		}
		if in.Price == nil && len(errs["price"]) == 0 {
			errs.Add("price", "Price is required")
		}
	}

	runStruct(in, errs, productMessages) // Range and shape checks

	if errs.Any() {
		return nil, errs
	}
	return in, nil
}
