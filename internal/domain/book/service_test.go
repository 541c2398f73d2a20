package book

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository 内存版图书仓储
type fakeRepository struct {
	books  map[uint]*Book
	nextID uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		books:  make(map[uint]*Book),
		nextID: 1,
	}
}

func (f *fakeRepository) Create(ctx context.Context, book *Book) error {
	for _, b := range f.books {
		if b.ISBN == book.ISBN {
			return ErrISBNDuplicate
		}
	}
	book.ID = f.nextID
	f.nextID++
	stored := *book
	f.books[book.ID] = &stored
	return nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id uint) (*Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, ErrBookNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepository) FindByISBN(ctx context.Context, isbn string) (*Book, error) {
	for _, b := range f.books {
		if b.ISBN == isbn {
			copied := *b
			return &copied, nil
		}
	}
	return nil, ErrBookNotFound
}

func (f *fakeRepository) Update(ctx context.Context, book *Book) error {
	if _, ok := f.books[book.ID]; !ok {
		return ErrBookNotFound
	}
	stored := *book
	f.books[book.ID] = &stored
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, id uint) error {
	if _, ok := f.books[id]; !ok {
		return ErrBookNotFound
	}
	delete(f.books, id)
	return nil
}

func (f *fakeRepository) List(ctx context.Context, params ListParams) ([]*Book, int64, error) {
	var list []*Book
	for _, b := range f.books {
		copied := *b
		list = append(list, &copied)
	}
	return list, int64(len(list)), nil
}

func (f *fakeRepository) Search(ctx context.Context, params SearchParams) ([]*Book, int64, error) {
	var list []*Book
	for _, b := range f.books {
		if matchSet(b.Title, params.Titles) && matchSet(b.Author, params.Authors) {
			copied := *b
			list = append(list, &copied)
		}
	}
	return list, int64(len(list)), nil
}

func (f *fakeRepository) ListByCategoryID(ctx context.Context, categoryID uint, page, pageSize int) ([]*Book, int64, error) {
	var list []*Book
	for _, b := range f.books {
		for _, cid := range b.CategoryIDs {
			if cid == categoryID {
				copied := *b
				list = append(list, &copied)
				break
			}
		}
	}
	return list, int64(len(list)), nil
}

// matchSet 空集合不过滤,否则值必须在集合中
func matchSet(value string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

func TestService_PublishBook(t *testing.T) {
	ctx := context.Background()

	t.Run("正常上架", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		b, err := svc.PublishBook(ctx, "9787115428028", "Go语言实战", "威廉·肯尼迪",
			5900, "", "测试描述", []uint{1, 2})
		require.NoError(t, err)

		assert.NotZero(t, b.ID)
		assert.Equal(t, "9787115428028", b.ISBN)
		assert.Equal(t, int64(5900), b.Price)
		assert.Equal(t, []uint{1, 2}, b.CategoryIDs)
	})

	t.Run("ISBN重复上架失败", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		_, err := svc.PublishBook(ctx, "9787115428028", "第一本", "作者A", 5900, "", "", nil)
		require.NoError(t, err)

		_, err = svc.PublishBook(ctx, "9787115428028", "第二本", "作者B", 6900, "", "", nil)
		assert.ErrorIs(t, err, ErrISBNDuplicate)
	})

	t.Run("带分隔符的ISBN合法", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		_, err := svc.PublishBook(ctx, "978-7-115-42802-8", "书名", "作者", 5900, "", "", nil)
		assert.NoError(t, err)
	})

	t.Run("ISBN格式非法上架失败", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		for _, isbn := range []string{"", "123", "12345678901234567"} {
			_, err := svc.PublishBook(ctx, isbn, "书名", "作者", 5900, "", "", nil)
			assert.ErrorIs(t, err, ErrInvalidISBN, "isbn=%q", isbn)
		}
	})

	t.Run("价格越界上架失败", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		for _, price := range []int64{0, -1, 100000000} {
			_, err := svc.PublishBook(ctx, "9787115428028", "书名", "作者", price, "", "", nil)
			assert.ErrorIs(t, err, ErrInvalidPrice, "price=%d", price)
		}
	})

	t.Run("书名或作者为空上架失败", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		_, err := svc.PublishBook(ctx, "9787115428028", "", "作者", 5900, "", "", nil)
		assert.ErrorIs(t, err, ErrTitleRequired)

		_, err = svc.PublishBook(ctx, "9787115428028", "书名", "", 5900, "", "", nil)
		assert.ErrorIs(t, err, ErrAuthorRequired)
	})
}

func TestService_UpdateBook(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (Service, *Book) {
		svc := NewService(newFakeRepository())
		b, err := svc.PublishBook(ctx, "9787115428028", "原书名", "原作者",
			5900, "", "原描述", []uint{1})
		require.NoError(t, err)
		return svc, b
	}

	t.Run("更新基本信息", func(t *testing.T) {
		svc, b := setup(t)

		updated, err := svc.UpdateBook(ctx, b.ID, "新书名", "", 0, "", "", nil)
		require.NoError(t, err)

		assert.Equal(t, "新书名", updated.Title)
		// 未提供的字段保持不变
		assert.Equal(t, "原作者", updated.Author)
		assert.Equal(t, int64(5900), updated.Price)
		assert.Equal(t, []uint{1}, updated.CategoryIDs)
		// ISBN不可修改
		assert.Equal(t, "9787115428028", updated.ISBN)
	})

	t.Run("价格传0保持不变", func(t *testing.T) {
		svc, b := setup(t)

		updated, err := svc.UpdateBook(ctx, b.ID, "", "", 0, "", "", nil)
		require.NoError(t, err)
		assert.Equal(t, int64(5900), updated.Price)
	})

	t.Run("更新价格", func(t *testing.T) {
		svc, b := setup(t)

		updated, err := svc.UpdateBook(ctx, b.ID, "", "", 8800, "", "", nil)
		require.NoError(t, err)
		assert.Equal(t, int64(8800), updated.Price)
	})

	t.Run("非法价格更新失败", func(t *testing.T) {
		svc, b := setup(t)

		_, err := svc.UpdateBook(ctx, b.ID, "", "", -100, "", "", nil)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("替换分类", func(t *testing.T) {
		svc, b := setup(t)

		updated, err := svc.UpdateBook(ctx, b.ID, "", "", 0, "", "", []uint{2, 3})
		require.NoError(t, err)
		assert.Equal(t, []uint{2, 3}, updated.CategoryIDs)

		// 空数组清空分类(与nil不同)
		updated, err = svc.UpdateBook(ctx, b.ID, "", "", 0, "", "", []uint{})
		require.NoError(t, err)
		assert.Empty(t, updated.CategoryIDs)
	})

	t.Run("图书不存在更新失败", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.UpdateBook(ctx, 9999, "新书名", "", 0, "", "", nil)
		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}

func TestService_DeleteBook(t *testing.T) {
	ctx := context.Background()

	t.Run("正常删除", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		b, err := svc.PublishBook(ctx, "9787115428028", "书名", "作者", 5900, "", "", nil)
		require.NoError(t, err)

		require.NoError(t, svc.DeleteBook(ctx, b.ID))

		_, err = svc.GetBookByID(ctx, b.ID)
		assert.ErrorIs(t, err, ErrBookNotFound)
	})

	t.Run("删除不存在的图书返回404错误", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		err := svc.DeleteBook(ctx, 9999)
		assert.ErrorIs(t, err, ErrBookNotFound)
	})
}

func TestService_SearchBooks(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository())

	seed := []struct {
		isbn, title, author string
	}{
		{"9787115428028", "Go语言实战", "威廉·肯尼迪"},
		{"9787111558422", "Go程序设计语言", "艾伦·多诺万"},
		{"9787115546081", "Redis深度历险", "钱文品"},
	}
	for _, s := range seed {
		_, err := svc.PublishBook(ctx, s.isbn, s.title, s.author, 5900, "", "", nil)
		require.NoError(t, err)
	}

	t.Run("无条件等价于全量", func(t *testing.T) {
		_, total, err := svc.SearchBooks(ctx, SearchParams{Page: 1, PageSize: 20})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("书名集合过滤", func(t *testing.T) {
		books, total, err := svc.SearchBooks(ctx, SearchParams{
			Titles: []string{"Go语言实战", "Redis深度历险"},
			Page:   1, PageSize: 20,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, books, 2)
	})

	t.Run("书名与作者条件取交集", func(t *testing.T) {
		// 书名命中两本,作者只命中其中一本
		books, total, err := svc.SearchBooks(ctx, SearchParams{
			Titles:  []string{"Go语言实战", "Go程序设计语言"},
			Authors: []string{"威廉·肯尼迪"},
			Page:    1, PageSize: 20,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, books, 1)
		assert.Equal(t, "Go语言实战", books[0].Title)
	})

	t.Run("条件无命中返回空", func(t *testing.T) {
		books, total, err := svc.SearchBooks(ctx, SearchParams{
			Titles: []string{"不存在的书"},
			Page:   1, PageSize: 20,
		})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, books)
	})
}

func TestIsValidISBN(t *testing.T) {
	valid := []string{"9787115428028", "7115428026", "978-7-115-42802-8"}
	for _, isbn := range valid {
		assert.True(t, isValidISBN(isbn), "isbn=%q", isbn)
	}

	invalid := []string{"", "abc", "123456789", "12345678901234"}
	for _, isbn := range invalid {
		assert.False(t, isValidISBN(isbn), "isbn=%q", isbn)
	}
}
