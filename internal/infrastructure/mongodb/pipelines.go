package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// salesMatch filtra ventas de las bodegas dadas con sale_date en [start, end].
func salesMatch(warehouseIDs []primitive.ObjectID, start, end time.Time) bson.D {
	return bson.D{{Key: "$match", Value: bson.D{
		{Key: "warehouse_id", Value: bson.D{{Key: "$in", Value: warehouseIDs}}},
		{Key: "sale_date", Value: bson.D{{Key: "$gte", Value: start}, {Key: "$lte", Value: end}}},
	}}}
}

var pairGroupID = bson.D{
	{Key: "product_id", Value: "$product_id"},
	{Key: "warehouse_id", Value: "$warehouse_id"},
}

var sortByPair = bson.D{{Key: "$sort", Value: bson.D{
	{Key: "_id.product_id", Value: 1},
	{Key: "_id.warehouse_id", Value: 1},
}}}

// recentSalesPipeline suma unidades y toma la última venta por par.
func recentSalesPipeline(warehouseIDs []primitive.ObjectID, start, end time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		salesMatch(warehouseIDs, start, end),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: pairGroupID},
			{Key: "total_quantity_sold", Value: bson.D{{Key: "$sum", Value: "$quantity_sold"}}},
			{Key: "last_sale_date", Value: bson.D{{Key: "$max", Value: "$sale_date"}}},
		}}},
		sortByPair,
	}
}

// velocityPipeline cuenta días calendario UTC distintos con ventas por par.
func velocityPipeline(warehouseIDs []primitive.ObjectID, start, end time.Time) mongo.Pipeline {
	day := bson.D{{Key: "$dateToString", Value: bson.D{
		{Key: "format", Value: "%Y-%m-%d"},
		{Key: "date", Value: "$sale_date"},
		{Key: "timezone", Value: "UTC"},
	}}}
	return mongo.Pipeline{
		salesMatch(warehouseIDs, start, end),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: pairGroupID},
			{Key: "total_quantity_sold", Value: bson.D{{Key: "$sum", Value: "$quantity_sold"}}},
			{Key: "days", Value: bson.D{{Key: "$addToSet", Value: day}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "total_quantity_sold", Value: 1},
			{Key: "days_with_sales", Value: bson.D{{Key: "$size", Value: "$days"}}},
		}}},
		sortByPair,
	}
}

// lookupOne une un documento de otra colección por llave y lo deja como subdocumento.
func lookupOne(from, localField, as string) []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: from},
			{Key: "localField", Value: localField},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: as},
		}}},
		{{Key: "$unwind", Value: "$" + as}},
	}
}

// snapshotsPipeline filtra inventories por pares y une producto y bodega.
// Un par sin producto o bodega queda fuera ($unwind sin preserveNull).
func snapshotsPipeline(pairs []pairID) mongo.Pipeline {
	or := make(bson.A, 0, len(pairs))
	for _, p := range pairs {
		or = append(or, bson.D{{Key: "product_id", Value: p.ProductID}, {Key: "warehouse_id", Value: p.WarehouseID}})
	}
	pipeline := mongo.Pipeline{{{Key: "$match", Value: bson.D{{Key: "$or", Value: or}}}}}
	pipeline = append(pipeline, lookupOne(colProducts, "product_id", "product")...)
	pipeline = append(pipeline, lookupOne(colWarehouses, "warehouse_id", "warehouse")...)
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{
		{Key: "product_id", Value: 1},
		{Key: "warehouse_id", Value: 1},
	}}})
	return pipeline
}

// primarySuppliersPipeline vínculos primarios de los productos con su proveedor.
func primarySuppliersPipeline(productIDs []primitive.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{{{Key: "$match", Value: bson.D{
		{Key: "product_id", Value: bson.D{{Key: "$in", Value: productIDs}}},
		{Key: "is_primary", Value: true},
	}}}}
	pipeline = append(pipeline, lookupOne(colSuppliers, "supplier_id", "supplier")...)
	pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{
		{Key: "product_id", Value: 1},
		{Key: "supplier._id", Value: 1},
	}}})
	return pipeline
}
