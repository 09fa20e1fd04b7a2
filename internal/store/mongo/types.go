package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/julianlopez/vainilla-catalog/internal/core"
)

const (
	ColProducts = "products"
	ColCoupons  = "coupons"
)

// Product
type ProductDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Title    string             `bson:"title"`
	Price    float64            `bson:"price"`
	Category string             `bson:"category"`
}

func fromProductDoc(d ProductDoc) core.Product {
	return core.Product{
		ID:       d.ID.Hex(),
		Title:    d.Title,
		Price:    d.Price,
		Category: d.Category,
	}
}

func toProductDoc(p core.Product) ProductDoc {
	// ID is left zero: Mongo assigns it on insert.
	return ProductDoc{
		Title:    p.Title,
		Price:    p.Price,
		Category: p.Category,
	}
}

// Coupon
type CouponDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Code     string             `bson:"code"`
	Discount float64            `bson:"discount"`
}

func fromCouponDoc(d CouponDoc) core.Coupon {
	return core.Coupon{
		ID:       d.ID.Hex(),
		Code:     d.Code,
		Discount: d.Discount,
	}
}

func toCouponDoc(c core.Coupon) CouponDoc {
	return CouponDoc{
		Code:     c.Code,
		Discount: c.Discount,
	}
}

// parseID converts a boundary string id into an ObjectID. A malformed id is
// a caller error, not a driver error.
func parseID(id, entity string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, &core.ValidationError{Msg: fmt.Sprintf("Invalid %s id", entity)}
	}
	return oid, nil
}
