package services

import (
	"errors"
	"time"

	"InnerVoiceGo/models"
	"InnerVoiceGo/utils"
	"gorm.io/gorm"
)

// AccountService 账号相关的存储操作
type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// CreateAccount 注册新账号，用户名已存在时返回 ErrDuplicateUser
func (s *AccountService) CreateAccount(username, password string) (*models.Account, error) {
	var existing models.Account
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateUser
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	account := models.Account{
		ID:        utils.GenerateID(),
		Username:  username,
		Password:  password,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// Authenticate 校验用户名和密码
// 用户不存在和密码错误统一返回 ErrInvalidCredentials，不泄露区别
func (s *AccountService) Authenticate(username, password string) (*models.Account, error) {
	var account models.Account
	err := s.db.Where("username = ? AND password = ?", username, password).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 记录最近登录时间
	now := time.Now()
	if err := s.db.Model(&account).Update("last_login", now).Error; err != nil {
		return nil, err
	}
	account.LastLogin = &now

	return &account, nil
}

// GetByID 按主键查询账号
func (s *AccountService) GetByID(id string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ?", id).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}
