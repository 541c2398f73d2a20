package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshop/pkg/errors"
)

// fakeRepository 内存版用户仓储
type fakeRepository struct {
	users  map[uint]*User
	nextID uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: make(map[uint]*User), nextID: 1}
}

func (f *fakeRepository) Create(ctx context.Context, u *User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return apperrors.ErrEmailDuplicate
		}
	}
	u.ID = f.nextID
	f.nextID++
	stored := *u
	f.users[u.ID] = &stored
	return nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id uint) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeRepository) Update(ctx context.Context, u *User) error {
	if _, ok := f.users[u.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	stored := *u
	f.users[u.ID] = &stored
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, id uint) error {
	delete(f.users, id)
	return nil
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("正常注册", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		u, err := svc.Register(ctx, "alice@example.com", "Test1234", "爱丽丝", "北京市海淀区1号")
		require.NoError(t, err)

		assert.NotZero(t, u.ID)
		assert.Equal(t, "alice@example.com", u.Email)
		// 角色固定为普通用户
		assert.Equal(t, RoleUser, u.Role)
		assert.False(t, u.IsAdmin())
		// 密码已加密,不存明文
		assert.NotEqual(t, "Test1234", u.Password)
		assert.NoError(t, svc.ValidatePassword(u.Password, "Test1234"))
	})

	t.Run("重复邮箱注册失败", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		_, err := svc.Register(ctx, "bob@example.com", "Test1234", "鲍勃", "")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "bob@example.com", "Test5678", "另一个鲍勃", "")
		assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)
	})

	t.Run("邮箱格式非法注册失败", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		for _, email := range []string{"", "no-at-sign", "a@b", "a b@example.com"} {
			_, err := svc.Register(ctx, email, "Test1234", "昵称昵称", "")
			assert.Error(t, err, "email=%q", email)
		}
	})

	t.Run("弱密码注册失败", func(t *testing.T) {
		svc := NewService(newFakeRepository())

		weak := []string{
			"Ab1",                   // 太短
			"12345678",              // 无字母
			"abcdefgh",              // 无数字
			"Test1234Test1234Test1", // 超过20位
		}
		for _, pwd := range weak {
			_, err := svc.Register(ctx, "carol@example.com", pwd, "卡罗尔", "")
			assert.ErrorIs(t, err, apperrors.ErrWeakPassword, "password=%q", pwd)
		}
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) Service {
		svc := NewService(newFakeRepository())
		_, err := svc.Register(ctx, "dave@example.com", "Test1234", "戴夫", "")
		require.NoError(t, err)
		return svc
	}

	t.Run("正常登录", func(t *testing.T) {
		svc := setup(t)

		u, err := svc.Login(ctx, "dave@example.com", "Test1234")
		require.NoError(t, err)
		assert.Equal(t, "dave@example.com", u.Email)
	})

	t.Run("密码错误登录失败", func(t *testing.T) {
		svc := setup(t)

		_, err := svc.Login(ctx, "dave@example.com", "WrongPass1")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("邮箱不存在与密码错误不可区分", func(t *testing.T) {
		svc := setup(t)

		// 防止邮箱枚举:未注册邮箱与密码错误返回同一个错误
		_, err := svc.Login(ctx, "nobody@example.com", "Test1234")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})
}
