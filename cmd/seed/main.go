package main

import (
	"log"
	"os"
	"time"

	"metory-be/internal/constant"
	"metory-be/internal/model"
	"metory-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedClip struct {
	Question string
	Category string
	VideoURL string
}

type seedStory struct {
	Title       string
	Description string
	Topic       string
	Clips       []seedClip
}

type seedUser struct {
	Email    string
	Username string
	FullName string
	Bio      string
	Avatar   string
	Stories  []seedStory
}

// Demo catalog used by the mobile client during development. Videos point
// at Google's public sample bucket so the feed is playable out of the box.
var catalog = []seedUser{
	{
		Email:    "minhanh@metory.app",
		Username: "minhanh_travel",
		FullName: "Minh Anh",
		Bio:      "Travel enthusiast & storyteller ✈️\nExploring the world, one story at a time.",
		Avatar:   "https://images.unsplash.com/photo-1534528741775-53994a69daeb?q=80&w=400",
		Stories: []seedStory{
			{
				Title:       "Chuyến đi Hà Giang 2025",
				Description: "Một chuyến đi ngẫu hứng nhưng đầy ắp kỷ niệm đáng nhớ trên cung đường Hạnh Phúc.",
				Topic:       constant.TopicTravel,
				Clips: []seedClip{
					{"Giới thiệu về chuyến đi này?", "Tổng quan", "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerFun.mp4"},
					{"Kỷ niệm đáng nhớ nhất là gì?", "Kỷ niệm", "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4"},
					{"Bạn cảm thấy thế nào về Hà Giang?", "Cảm xúc", "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerMeltdowns.mp4"},
					{"Món ăn nào bạn thích nhất?", "Ẩm thực", "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/SubaruOutbackOnStreetAndDirt.mp4"},
				},
			},
		},
	},
	{
		Email:    "chefhuy@metory.app",
		Username: "chef_huy_kitchen",
		FullName: "Chef Huy",
		Bio:      "Food lover sharing recipes from my kitchen to yours 🍜",
		Avatar:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?q=80&w=400",
		Stories: []seedStory{
			{
				Title:       "Công thức Phở Bò Gia Truyền",
				Description: "Bí quyết nấu một bát phở bò đậm đà, chuẩn vị Hà Nội ngay tại nhà.",
				Topic:       constant.TopicFood,
				Clips: []seedClip{
					{"Giới thiệu về món phở này?", "Giới thiệu", "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/TearsOfSteel.mp4"},
					{"Bí quyết để nước dùng trong và ngọt là gì?", "Bí quyết", "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/WeAreGoingOnBullrun.mp4"},
				},
			},
		},
	},
	{
		Email:    "thuhien@metory.app",
		Username: "yogawithhien",
		FullName: "Thu Hiền",
		Bio:      "Yoga instructor & wellness coach. Find your balance with me.",
		Avatar:   "https://images.unsplash.com/photo-1494790108377-be9c29b29330?q=80&w=400",
		Stories: []seedStory{
			{
				Title:       "Yoga Chào Buổi Sáng",
				Description: "5 phút mỗi sáng để khởi đầu một ngày mới tràn đầy năng lượng và tích cực.",
				Topic:       "Sức khỏe",
				Clips: []seedClip{
					{"Bài tập này dành cho ai?", "Giới thiệu", "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4"},
					{"Lợi ích của việc tập yoga buổi sáng là gì?", "Lợi ích", "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4"},
				},
			},
		},
	},
	{
		Email:    "giabao@metory.app",
		Username: "baotech",
		FullName: "Gia Bảo",
		Bio:      "Unboxing the future of tech 💻📱",
		Avatar:   "https://images.unsplash.com/photo-1539571696357-5a69c17a67c6?q=80&w=400",
		Stories: []seedStory{
			{
				Title:       "Review chi tiết Macbook Pro M4",
				Description: "Liệu đây có phải là chiếc laptop đáng mua nhất năm 2025?",
				Topic:       constant.TopicTech,
				Clips: []seedClip{
					{"Thiết kế có gì mới?", "Thiết kế", "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4"},
					{"Hiệu năng thực tế như thế nào?", "Hiệu năng", "http://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4"},
				},
			},
		},
	},
}

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding demo catalog (%d creators)...", len(catalog))

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: Failed to hash seed password:", err)
	}
	passwordHash := string(hash)

	for _, su := range catalog {
		user, err := seedOneUser(db, su, passwordHash)
		if err != nil {
			color.Red("Failed to seed user %s: %v", su.Username, err)
			continue
		}

		for _, ss := range su.Stories {
			if err := seedOneStory(db, user.Id, ss); err != nil {
				color.Red("Failed to seed story %q: %v", ss.Title, err)
			}
		}
	}

	color.Green("Seeding completed!")
}

func seedOneUser(db *gorm.DB, su seedUser, passwordHash string) (*model.User, error) {
	var existing model.User
	if err := db.Where("username = ?", su.Username).First(&existing).Error; err == nil {
		color.Yellow("User '%s' already exists, skipping...", su.Username)
		return &existing, nil
	}

	now := time.Now()
	user := model.User{
		Email:           su.Email,
		PasswordHash:    &passwordHash,
		Username:        su.Username,
		FullName:        su.FullName,
		Bio:             su.Bio,
		Status:          "active",
		EmailVerified:   true,
		EmailVerifiedAt: &now,
		AvatarURL:       &su.Avatar,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	color.Green("Created user: %s (@%s)", su.FullName, su.Username)
	return &user, nil
}

func seedOneStory(db *gorm.DB, userId uuid.UUID, ss seedStory) error {
	var existing model.Story
	if err := db.Where("user_id = ? AND title = ?", userId, ss.Title).First(&existing).Error; err == nil {
		color.Yellow("Story '%s' already exists, skipping...", ss.Title)
		return nil
	}

	story := model.Story{
		UserId:      userId,
		Title:       ss.Title,
		Description: ss.Description,
		Topic:       ss.Topic,
		Visibility:  constant.VisibilityPublic,
	}
	if err := db.Create(&story).Error; err != nil {
		return err
	}

	for i, sc := range ss.Clips {
		clip := model.Clip{
			StoryId:  story.Id,
			Question: sc.Question,
			Category: sc.Category,
			VideoURL: sc.VideoURL,
			Position: i,
			Status:   "ready",
		}
		if err := db.Create(&clip).Error; err != nil {
			return err
		}
	}

	color.Green("Created story: %s (%d clips)", ss.Title, len(ss.Clips))
	return nil
}
