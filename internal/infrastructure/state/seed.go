package state

import (
	"github.com/shopspring/decimal"

	"github.com/nikiya/zaiko-api/internal/domain/entity"
)

// Datasets semilla por colección. Se usan cuando el blob persistido de esa
// colección falta o está corrupto; cada colección cae a su semilla de forma
// independiente.

func seedProducts() []entity.Product {
	return []entity.Product{
		{
			ID:       "1",
			Name:     "オーガニックコットンTシャツ",
			Category: "衣類", MediumCategory: "トップス",
			ImageURL: "https://picsum.photos/200/200?random=1",
			Stock:    50, Status: entity.StatusInStock,
			Price: decimal.NewFromInt(2900),
		},
		{
			ID:       "2",
			Name:     "リネンブレンドパンツ",
			Category: "衣類", MediumCategory: "ボトムス",
			ImageURL: "https://picsum.photos/200/200?random=2",
			Stock:    5, Status: entity.StatusLowStock,
			Price: decimal.NewFromInt(4500),
		},
		{
			ID:       "3",
			Name:     "シルクスカーフ",
			Category: "服飾雑貨",
			ImageURL: "https://picsum.photos/200/200?random=3",
			Stock:    0, Status: entity.StatusOutOfStock,
			Price: decimal.NewFromInt(3200),
		},
		{
			ID:       "4",
			Name:     "デニムジャケット",
			Category: "衣類", MediumCategory: "アウター",
			ImageURL: "https://picsum.photos/200/200?random=4",
			Stock:    23, Status: entity.StatusInStock,
		},
	}
}

func seedTransactions() []entity.Transaction {
	return []entity.Transaction{
		{ID: "1", ProductName: "プレミアムブレンド豆 200g", User: "田中", Amount: 50, Date: "2023/10/27 14:30", Type: entity.MovementIn},
		{ID: "2", ProductName: "オーガニック緑茶ティーバッグ", User: "鈴木", Amount: -15, Date: "2023/10/27 10:15", Type: entity.MovementOut, Destination: "店舗A"},
		{ID: "3", ProductName: "プレミアムブレンド豆 200g", User: "佐藤", Amount: -5, Date: "2023/10/26 18:00", Type: entity.MovementOut, Destination: "店舗B"},
		{ID: "4", ProductName: "天然水 2L x6本", User: "田中", Amount: 20, Date: "2023/10/26 09:00", Type: entity.MovementIn},
	}
}

func seedCategories() []entity.Category {
	return []entity.Category{
		{ID: "c1", Name: "衣類", Type: entity.CategoryMajor, Icon: entity.DefaultCategoryIcon},
		{ID: "c2", Name: "服飾雑貨", Type: entity.CategoryMajor, Icon: entity.DefaultCategoryIcon},
		{ID: "c3", Name: "トップス", Type: entity.CategoryMedium, Icon: entity.DefaultCategoryIcon},
		{ID: "c4", Name: "ボトムス", Type: entity.CategoryMedium, Icon: entity.DefaultCategoryIcon},
		{ID: "c5", Name: "アウター", Type: entity.CategoryMedium, Icon: entity.DefaultCategoryIcon},
		{ID: "c6", Name: "半袖", Type: entity.CategoryMinor, Icon: entity.DefaultCategoryIcon},
	}
}

func seedStaff() []entity.Staff {
	return []entity.Staff{
		{ID: "s1", Name: "田中"},
		{ID: "s2", Name: "鈴木"},
		{ID: "s3", Name: "佐藤"},
	}
}

func seedDestinations() []entity.Destination {
	return []entity.Destination{
		{ID: "d1", Name: "店舗A"},
		{ID: "d2", Name: "店舗B"},
		{ID: "d3", Name: "倉庫"},
	}
}
