package integration

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBookCatalog 测试图书目录管理
func TestBookCatalog(t *testing.T) {
	RequireServer(t)
	adminToken := AdminLogin(t)

	t.Run("管理员上架图书", func(t *testing.T) {
		book := PublishTestBook(t, adminToken, 5900)
		assert.NotZero(t, book.ID)
		assert.Equal(t, int64(5900), book.Price)
	})

	t.Run("重复ISBN上架应失败", func(t *testing.T) {
		isbn := GenerateTestISBN()
		req := map[string]interface{}{
			"isbn":   isbn,
			"title":  "重复ISBN测试",
			"author": "作者",
			"price":  5900,
		}

		resp1 := PostJSON(t, BaseURL+"/books", req, adminToken)
		require.Equal(t, 0, resp1.Code)

		resp2 := PostJSON(t, BaseURL+"/books", req, adminToken)
		assert.Equal(t, 40004, resp2.Code, "重复ISBN应返回冲突错误")
	})

	t.Run("普通用户上架图书被拒绝", func(t *testing.T) {
		token, _ := RegisterAndLogin(t, "customer")

		resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"isbn":   GenerateTestISBN(),
			"title":  "越权测试",
			"author": "作者",
			"price":  5900,
		}, token)
		assert.Equal(t, 40300, resp.Code, "普通用户应被403拒绝")
	})

	t.Run("更新图书不改变ISBN", func(t *testing.T) {
		book := PublishTestBook(t, adminToken, 5900)

		resp := PutJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, book.ID), map[string]interface{}{
			"title": "更新后的书名",
			"price": 6900,
		}, adminToken)
		require.Equal(t, 0, resp.Code, "更新应该成功: %s", resp.Message)

		var updated BookData
		require.NoError(t, json.Unmarshal(resp.Data, &updated))
		assert.Equal(t, "更新后的书名", updated.Title)
		assert.Equal(t, int64(6900), updated.Price)
		assert.Equal(t, book.ISBN, updated.ISBN, "ISBN创建后不可修改")
	})

	t.Run("查询图书详情", func(t *testing.T) {
		book := PublishTestBook(t, adminToken, 5900)

		// 详情为公开接口,无需Token;第二次命中Redis缓存
		for i := 0; i < 2; i++ {
			resp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, book.ID), "")
			require.Equal(t, 0, resp.Code)

			var got BookData
			require.NoError(t, json.Unmarshal(resp.Data, &got))
			assert.Equal(t, book.ISBN, got.ISBN)
		}
	})

	t.Run("删除图书后查询404", func(t *testing.T) {
		book := PublishTestBook(t, adminToken, 5900)

		delResp := DeleteJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, book.ID), adminToken)
		require.Equal(t, 0, delResp.Code)

		getResp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, book.ID), "")
		assert.Equal(t, 40402, getResp.Code, "已删除图书应返回404错误")
	})

	t.Run("不存在的图书操作返回404", func(t *testing.T) {
		resp := PutJSON(t, BaseURL+"/books/99999999", map[string]interface{}{
			"title": "不存在",
		}, adminToken)
		assert.Equal(t, 40402, resp.Code)

		resp = DeleteJSON(t, BaseURL+"/books/99999999", adminToken)
		assert.Equal(t, 40402, resp.Code)
	})
}

// TestBookSearch 测试图书搜索(集合条件取交集)
func TestBookSearch(t *testing.T) {
	RequireServer(t)
	adminToken := AdminLogin(t)

	// 准备数据:同名参数可重复出现
	uniq := GenerateTestISBN()[5:]
	titleA := "搜索测试A" + uniq
	titleB := "搜索测试B" + uniq
	authorX := "搜索作者X" + uniq

	for _, b := range []struct {
		title, author string
	}{
		{titleA, authorX},
		{titleB, authorX},
		{titleA, "其他作者" + uniq},
	} {
		resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"isbn":   GenerateTestISBN(),
			"title":  b.title,
			"author": b.author,
			"price":  5900,
		}, adminToken)
		require.Equal(t, 0, resp.Code)
	}

	listOf := func(resp *Response) []BookData {
		var data struct {
			List  []BookData `json:"list"`
			Total int64      `json:"total"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		return data.List
	}

	t.Run("书名集合过滤", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/books/search?title=%s&title=%s", BaseURL, titleA, titleB), "")
		require.Equal(t, 0, resp.Code)
		assert.Len(t, listOf(resp), 3)
	})

	t.Run("书名与作者取交集", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/books/search?title=%s&author=%s", BaseURL, titleA, authorX), "")
		require.Equal(t, 0, resp.Code)
		list := listOf(resp)
		require.Len(t, list, 1)
		assert.Equal(t, titleA, list[0].Title)
	})

	t.Run("未命中返回空列表", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/books/search?title=不存在的书名ZZZ", "")
		require.Equal(t, 0, resp.Code)
		assert.Empty(t, listOf(resp))
	})
}

// TestCategories 测试分类管理
func TestCategories(t *testing.T) {
	RequireServer(t)
	adminToken := AdminLogin(t)

	createCategory := func(t *testing.T, name string) uint {
		resp := PostJSON(t, BaseURL+"/categories", map[string]string{
			"name":        name,
			"description": "集成测试分类",
		}, adminToken)
		require.Equal(t, 0, resp.Code, "创建分类失败: %s", resp.Message)

		var data struct {
			ID uint `json:"id"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		return data.ID
	}

	t.Run("创建并查询分类", func(t *testing.T) {
		name := "分类" + GenerateTestISBN()
		id := createCategory(t, name)

		resp := GetJSON(t, fmt.Sprintf("%s/categories/%d", BaseURL, id), "")
		require.Equal(t, 0, resp.Code)
	})

	t.Run("重名分类创建失败", func(t *testing.T) {
		name := "重名分类" + GenerateTestISBN()
		createCategory(t, name)

		resp := PostJSON(t, BaseURL+"/categories", map[string]string{
			"name": name,
		}, adminToken)
		assert.NotEqual(t, 0, resp.Code, "重名分类应该失败")
	})

	t.Run("普通用户创建分类被拒绝", func(t *testing.T) {
		token, _ := RegisterAndLogin(t, "cat_customer")

		resp := PostJSON(t, BaseURL+"/categories", map[string]string{
			"name": "越权分类",
		}, token)
		assert.Equal(t, 40300, resp.Code)
	})

	t.Run("分类下的图书", func(t *testing.T) {
		id := createCategory(t, "分类图书"+GenerateTestISBN())

		// 上架两本属于该分类的图书
		for i := 0; i < 2; i++ {
			resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
				"isbn":         GenerateTestISBN(),
				"title":        fmt.Sprintf("分类图书%d", i),
				"author":       "作者",
				"price":        5900,
				"category_ids": []uint{id},
			}, adminToken)
			require.Equal(t, 0, resp.Code)
		}

		resp := GetJSON(t, fmt.Sprintf("%s/categories/%d/books", BaseURL, id), "")
		require.Equal(t, 0, resp.Code)

		var data struct {
			List  []BookData `json:"list"`
			Total int64      `json:"total"`
		}
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, int64(2), data.Total)
	})

	t.Run("不存在的分类返回404", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/categories/99999999/books", "")
		assert.Equal(t, 40404, resp.Code)
	})

	t.Run("上架时引用不存在的分类失败", func(t *testing.T) {
		resp := PostJSON(t, BaseURL+"/books", map[string]interface{}{
			"isbn":         GenerateTestISBN(),
			"title":        "引用无效分类",
			"author":       "作者",
			"price":        5900,
			"category_ids": []uint{99999999},
		}, adminToken)
		assert.NotEqual(t, 0, resp.Code)
	})
}
