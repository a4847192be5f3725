package user

import (
	"gorm.io/gorm"

	userModel "terminal-terrace/enroll-service/internal/model/user"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	FindAll() ([]userModel.User, error)
	FindByID(id string) (*userModel.User, error)
	FindByEmail(email string) (*userModel.User, error)
	Update(id string, fields map[string]interface{}) error
	Delete(id string) error
}

// userRepository 实现
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建 Repository 实例
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindAll 查询全部用户
func (r *userRepository) FindAll() ([]userModel.User, error) {
	var users []userModel.User
	err := r.db.Order("created_at ASC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID 按ID查询用户
func (r *userRepository) FindByID(id string) (*userModel.User, error) {
	var foundUser userModel.User
	err := r.db.First(&foundUser, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &foundUser, nil
}

// FindByEmail 按邮箱查询用户
func (r *userRepository) FindByEmail(email string) (*userModel.User, error) {
	var foundUser userModel.User
	err := r.db.Where("email = ?", email).First(&foundUser).Error
	if err != nil {
		return nil, err
	}
	return &foundUser, nil
}

// Update 更新指定字段
func (r *userRepository) Update(id string, fields map[string]interface{}) error {
	return r.db.Model(&userModel.User{}).Where("id = ?", id).Updates(fields).Error
}

// Delete 删除用户
func (r *userRepository) Delete(id string) error {
	return r.db.Delete(&userModel.User{}, "id = ?", id).Error
}
