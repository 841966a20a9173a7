package seed

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/AnhTuano/CNTTK23M/internal/app/models"
	"github.com/AnhTuano/CNTTK23M/internal/app/repositories"
	"github.com/AnhTuano/CNTTK23M/internal/config"
	"github.com/AnhTuano/CNTTK23M/internal/pkg/auth"
)

// Load populates an empty store. With demo data enabled the full mock
// class is loaded, otherwise only the admin account, the badge catalog
// and the default site configuration.
func Load(store *repositories.Store, cfg *config.Config, lgr zerolog.Logger) error {
	hash, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	snap := &repositories.Snapshot{
		WebsiteConfig: defaultWebsiteConfig(),
		Badges:        badgeCatalog(),
	}

	if cfg.Seed.DemoData {
		now := time.Now()
		snap.Users = demoUsers(cfg.Seed.AdminEmail, hash)
		snap.Posts = demoPosts(now)
		snap.Documents = demoDocuments(now)
		snap.Memories = demoMemories()
		snap.ChatRooms = demoChatRooms(now)
		snap.Notifications = demoNotifications(now)
		lgr.Info().
			Int("users", len(snap.Users)).
			Int("posts", len(snap.Posts)).
			Int("documents", len(snap.Documents)).
			Msg("Loading demo data")
	} else {
		snap.Users = []*models.User{adminUser(cfg.Seed.AdminEmail, hash)}
		snap.ChatRooms = demoChatRooms(time.Now())[:1]
		lgr.Info().Str("admin", cfg.Seed.AdminEmail).Msg("Loading default data")
	}

	store.Replace(snap)
	return nil
}

func defaultWebsiteConfig() *models.WebsiteConfig {
	return &models.WebsiteConfig{
		ClassName:        "Lớp CNTT K23M",
		Slogan:           `"Cùng nhau học, cùng nhau lớn"`,
		CoverImage:       "https://picsum.photos/seed/classbg/1200/400",
		WebsiteName:      "ClassZone",
		WebsiteTitle:     "ClassZone",
		AllowedPostRoles: []models.Role{models.RoleAdmin, models.RoleLopTruong, models.RoleBiThu},
		Banner: models.BannerConfig{
			Text: "Chào mừng đến với năm học mới! Hãy cùng nhau xây dựng một tập thể vững mạnh.",
			Type: models.BannerInfo,
		},
	}
}

func badgeCatalog() []models.Badge {
	return []models.Badge{
		{ID: "TOP_CONTRIBUTOR", Name: "Người đóng góp hàng đầu", Description: "Đạt điểm cao nhất trên bảng thành tích!", Icon: "Sparkles", Color: "text-yellow-400"},
		{ID: "PROLIFIC_POSTER", Name: "Người đăng bài tích cực", Description: "Đã đăng hơn 10 thông báo.", Icon: "Newspaper", Color: "text-blue-400"},
		{ID: "LIBRARIAN", Name: "Thủ thư", Description: "Đã chia sẻ hơn 10 tài liệu.", Icon: "BookOpenCheck", Color: "text-green-400"},
		{ID: "COMMUNICATOR", Name: "Người giao tiếp", Description: "Đã viết hơn 50 bình luận.", Icon: "MessageCircleMore", Color: "text-purple-400"},
		{ID: "FIRST_POST", Name: "Người tiên phong", Description: "Đã tạo bài đăng đầu tiên.", Icon: "Award", Color: "text-orange-400"},
	}
}

func badgeByID(id string) models.Badge {
	for _, b := range badgeCatalog() {
		if b.ID == id {
			return b
		}
	}
	return models.Badge{ID: id}
}

func adminUser(email, passwordHash string) *models.User {
	return &models.User{
		ID:         1,
		Name:       "Nguyễn Văn An",
		Avatar:     "https://picsum.photos/seed/user1/100",
		CoverImage: "https://picsum.photos/seed/cover1/1000/300",
		Role:       models.RoleAdmin,
		Bio:        `"Work hard, play harder. Rất vui được làm quen với mọi người!"`,
		Major:      "Công nghệ Phần mềm",
		JoinDate:   "15/08/2021",
		Birthday:   "20/10/2003",
		Contact:    models.Contact{Email: email, Phone: "0123 456 789"},
		Socials:    models.Socials{Github: "https://github.com/example", Facebook: "https://facebook.com/example"},
		Points:     1250,
		Badges:     []models.Badge{badgeByID("TOP_CONTRIBUTOR"), badgeByID("PROLIFIC_POSTER"), badgeByID("COMMUNICATOR")},
		Password:   passwordHash,
	}
}

func demoUsers(adminEmail, passwordHash string) []*models.User {
	users := []*models.User{
		adminUser(adminEmail, passwordHash),
		{
			ID: 2, Name: "Trần Thị Bình",
			Avatar: "https://picsum.photos/seed/user2/100", CoverImage: "https://picsum.photos/seed/cover2/1000/300",
			Role: models.RoleLopTruong, Bio: "Luôn cố gắng vì một tập thể vững mạnh.",
			Major: "Hệ thống Thông tin", JoinDate: "15/08/2021", Birthday: "15/05/2003",
			Contact: models.Contact{Email: "binh.tt@example.com"},
			Socials: models.Socials{Facebook: "https://facebook.com/example"},
			Points:  1100,
			Badges:  []models.Badge{badgeByID("PROLIFIC_POSTER"), badgeByID("FIRST_POST")},
		},
		{
			ID: 3, Name: "Lê Văn Cường",
			Avatar: "https://picsum.photos/seed/user3/100", CoverImage: "https://picsum.photos/seed/cover3/1000/300",
			Role: models.RoleLopPhoHocTap, Bio: "Chia sẻ kiến thức là niềm vui.",
			Major: "Khoa học Máy tính", JoinDate: "16/08/2021", Birthday: "11/12/2003",
			Contact: models.Contact{Email: "cuong.lv@example.com", Phone: "0123 456 788"},
			Socials: models.Socials{Github: "https://github.com/example", Facebook: "https://facebook.com/example"},
			Points:  1050,
			Badges:  []models.Badge{badgeByID("LIBRARIAN")},
		},
		{
			ID: 4, Name: "Phạm Thị Dung",
			Avatar: "https://picsum.photos/seed/user4/100", CoverImage: "https://picsum.photos/seed/cover4/1000/300",
			Role: models.RoleBiThu, Bio: "Nhiệt huyết, năng động, sáng tạo.",
			Major: "Công nghệ Phần mềm", JoinDate: "20/08/2021", Birthday: "25/03/2003",
			Contact: models.Contact{Email: "dung.pt@example.com"},
			Socials: models.Socials{Facebook: "https://facebook.com/example"},
			Points:  900,
			Badges:  []models.Badge{badgeByID("FIRST_POST")},
		},
		{
			ID: 5, Name: "Hoàng Văn Em",
			Avatar: "https://picsum.photos/seed/user5/100", CoverImage: "https://picsum.photos/seed/cover5/1000/300",
			Role: models.RoleThanhVien, Bio: "Thích học hỏi và khám phá những điều mới.",
			Major: "An toàn Thông tin", JoinDate: "01/09/2021", Birthday: "01/01/2003",
			Contact: models.Contact{Email: "em.hv@example.com"},
			Points:  850,
			Badges:  []models.Badge{badgeByID("COMMUNICATOR")},
			Locked:  true,
		},
		{
			ID: 6, Name: "Vũ Thị Giang",
			Avatar: "https://picsum.photos/seed/user6/100", CoverImage: "https://picsum.photos/seed/cover6/1000/300",
			Role: models.RoleThanhVien, Bio: "Một thành viên tích cực của lớp.",
			Major: "Hệ thống Thông tin", JoinDate: "02/09/2021", Birthday: "30/07/2003",
			Contact: models.Contact{Email: "giang.vt@example.com"},
			Socials: models.Socials{Facebook: "https://facebook.com/example"},
			Points:  500,
			Badges:  []models.Badge{},
		},
		{
			ID: 7, Name: "Đỗ Văn Hùng",
			Avatar: "https://picsum.photos/seed/user7/100", CoverImage: "https://picsum.photos/seed/cover7/1000/300",
			Role: models.RolePhoBiThu, Bio: "Luôn sẵn sàng hỗ trợ các hoạt động của lớp.",
			Major: "Khoa học Máy tính", JoinDate: "15/08/2021", Birthday: "12/02/2003",
			Contact: models.Contact{Email: "hung.dv@example.com"},
			Points:  720,
			Badges:  []models.Badge{},
		},
		{
			ID: 8, Name: "Ngô Thị Yến",
			Avatar: "https://picsum.photos/seed/user8/100", CoverImage: "https://picsum.photos/seed/cover8/1000/300",
			Role: models.RoleLopPhoDoiSong, Bio: "Gắn kết mọi người là sứ mệnh của mình.",
			Major: "Công nghệ Phần mềm", JoinDate: "18/08/2021", Birthday: "19/09/2003",
			Contact: models.Contact{Email: "yen.nt@example.com"},
			Socials: models.Socials{Facebook: "https://facebook.com/example"},
			Points:  680,
			Badges:  []models.Badge{},
		},
	}
	for _, u := range users[1:] {
		u.Password = passwordHash
	}
	return users
}

func demoPosts(now time.Time) []*models.Post {
	return []*models.Post{
		{
			ID: 1, AuthorID: 2,
			Title:    "Thông báo lịch thi cuối kỳ",
			Content:  "Lịch thi cuối kỳ đã được cập nhật trên trang web của trường. Các bạn chú ý theo dõi để không bỏ lỡ nhé. Chúc cả lớp thi tốt!",
			Category: "Học tập",
			ImageURL: "https://picsum.photos/seed/post1/800/400",
			UpvotedBy: []int64{1, 3, 4, 5, 6, 7, 8}, DownvotedBy: []int64{},
			Timestamp: now.Add(-2 * time.Hour),
			Pinned:    true,
			Comments: []models.Comment{
				{ID: 1, PostID: 1, AuthorID: 5, Content: "Cảm ơn lớp trưởng nhiều!", Timestamp: now.Add(-1 * time.Hour)},
				{ID: 2, PostID: 1, AuthorID: 6, Content: "Tuyệt vời!", Timestamp: now.Add(-30 * time.Minute)},
				{ID: 3, PostID: 1, AuthorID: 1, Content: "Mọi người nhớ xem kỹ lịch thi nhé!", Timestamp: now.Add(-25 * time.Minute)},
			},
			Poll: &models.Poll{
				Question: "Mọi người đã sẵn sàng cho kỳ thi chưa?",
				Options: []models.PollOption{
					{ID: 1, Text: "Sẵn sàng 100%!", VotedBy: []int64{1, 3, 8}},
					{ID: 2, Text: "Vẫn đang cày cuốc", VotedBy: []int64{4, 5, 6}},
					{ID: 3, Text: "Cần thêm thời gian", VotedBy: []int64{2, 7}},
				},
			},
		},
		{
			ID: 2, AuthorID: 4,
			Title:    "Hoạt động tình nguyện Mùa Hè Xanh",
			Content:  "Đoàn trường tổ chức chương trình Mùa Hè Xanh 2024. Các bạn đăng ký tham gia tại văn phòng Đoàn nhé. Đây là cơ hội để cống hiến và trải nghiệm.",
			Category: "Hoạt động",
			ImageURL: "https://picsum.photos/seed/post2/800/400",
			UpvotedBy: []int64{1, 2, 5, 7}, DownvotedBy: []int64{3},
			Timestamp: now.Add(-24 * time.Hour),
			Comments: []models.Comment{
				{ID: 4, PostID: 2, AuthorID: 7, Content: "Mình sẽ tham gia!", Timestamp: now.Add(-10 * time.Hour)},
				{ID: 5, PostID: 2, AuthorID: 1, Content: "Hoan nghênh tinh thần của bạn!", Timestamp: now.Add(-9 * time.Hour)},
			},
		},
		{
			ID: 3, AuthorID: 1,
			Title:    "Cập nhật nội quy diễn đàn lớp",
			Content:  "Admin đã cập nhật một số quy định mới về việc đăng bài và bình luận. Mọi người vui lòng đọc kỹ để tránh vi phạm. Cảm ơn sự hợp tác của các bạn.",
			Category: "Thông báo chung",
			UpvotedBy: []int64{2, 3, 4, 5}, DownvotedBy: []int64{},
			Timestamp: now.Add(-3 * 24 * time.Hour),
			Comments: []models.Comment{
				{ID: 6, PostID: 3, AuthorID: 8, Content: "Đã đọc và nắm rõ. Cảm ơn admin.", Timestamp: now.Add(-2 * 24 * time.Hour)},
			},
		},
		{
			ID: 4, AuthorID: 3,
			Title:    "Tài liệu ôn tập môn Mạng Máy Tính",
			Content:  "Mình đã tổng hợp một số tài liệu ôn tập quan trọng cho môn Mạng Máy Tính. Các bạn có thể truy cập trong mục Tài liệu của lớp nhé.",
			Category: "Học tập",
			UpvotedBy: []int64{1, 2, 4, 5, 6}, DownvotedBy: []int64{},
			Timestamp: now.Add(-5 * 24 * time.Hour),
			Comments: []models.Comment{
				{ID: 7, PostID: 4, AuthorID: 6, Content: "Tài liệu rất hữu ích, cảm ơn Cường nhiều!", Timestamp: now.Add(-4 * 24 * time.Hour)},
				{ID: 8, PostID: 4, AuthorID: 5, Content: "Đúng thứ mình đang cần!", Timestamp: now.Add(-4 * 24 * time.Hour)},
			},
		},
	}
}

func demoDocuments(now time.Time) []*models.Document {
	return []*models.Document{
		{ID: 1, Title: "Slide bài giảng Mạng Máy Tính - Chương 1", UploaderID: 3, Subject: "Mạng Máy Tính", Type: models.DocTypeBaiGiang, Link: "#", Timestamp: now.Add(-7 * 24 * time.Hour), Status: models.StatusApproved},
		{ID: 2, Title: "Tổng hợp đề thi Lập Trình Web", UploaderID: 5, Subject: "Lập Trình Web", Type: models.DocTypeDe, Link: "#", Timestamp: now.Add(-14 * 24 * time.Hour), Status: models.StatusApproved},
		{ID: 3, Title: "Ghi chú quan trọng môn Cơ Sở Dữ Liệu", UploaderID: 6, Subject: "Cơ Sở Dữ Liệu", Type: models.DocTypeGhiChu, Link: "#", Timestamp: now.Add(-3 * 24 * time.Hour), Status: models.StatusApproved},
		{ID: 4, Title: "Slide Trí Tuệ Nhân Tạo", UploaderID: 3, Subject: "Trí Tuệ Nhân Tạo", Type: models.DocTypeBaiGiang, Link: "#", Timestamp: now.Add(-30 * 24 * time.Hour), Status: models.StatusApproved},
		{ID: 5, Title: "Đề cương ôn tập Triết học Mác-Lênin", UploaderID: 5, Subject: "Triết học", Type: models.DocTypeDe, Link: "#", Timestamp: now.Add(-1 * time.Hour), Status: models.StatusPending},
		{ID: 6, Title: "Ghi chú nhanh buổi học chiều nay", UploaderID: 2, Subject: "Lập Trình Web", Type: models.DocTypeGhiChu, Link: "#", Timestamp: now.Add(-2 * time.Hour), Status: models.StatusPending},
	}
}

func demoMemories() []*models.Memory {
	memories := make([]*models.Memory, 0, 15)
	for i := 0; i < 15; i++ {
		status := models.StatusApproved
		if i >= 12 {
			status = models.StatusPending
		}
		memories = append(memories, &models.Memory{
			ID:         int64(i + 1),
			URL:        fmt.Sprintf("https://picsum.photos/seed/memory%d/800/600", i),
			Thumbnail:  fmt.Sprintf("https://picsum.photos/seed/memory%d/400/300", i),
			Semester:   fmt.Sprintf("Học kỳ %d - Năm 2", i%4+1),
			UploaderID: int64(i%8 + 1),
			Reactions:  map[string]int{"❤️": (i*7)%50 + 1, "😆": (i * 3) % 30, "😢": i % 5},
			Status:     status,
		})
	}
	return memories
}

func demoChatRooms(now time.Time) []*models.ChatRoom {
	return []*models.ChatRoom{
		{
			ID:          "general",
			Name:        "Cả lớp",
			Icon:        "Users",
			Description: "Kênh chat chung cho toàn bộ lớp",
			Messages: []models.ChatMessage{
				{ID: 101, SenderID: 2, Text: "Thông báo: Thứ 2 tuần sau lớp mình nghỉ học nhé.", Timestamp: now.Add(-3 * time.Hour)},
				{ID: 102, SenderID: 5, Text: "Wow, tin vui quá!", Timestamp: now.Add(-3*time.Hour + time.Minute)},
				{ID: 103, SenderID: 6, Text: "Cảm ơn lớp trưởng đã thông báo ạ.", Timestamp: now.Add(-3*time.Hour + 2*time.Minute)},
			},
		},
		{
			ID:           "committee",
			Name:         "Ban Cán Sự",
			Icon:         "Shield",
			Description:  "Kênh riêng cho Ban Cán Sự",
			AllowedRoles: models.CommitteeRoles,
			Messages: []models.ChatMessage{
				{ID: 201, SenderID: 2, Text: "Chào mọi người, chúng ta cần họp gấp về kế hoạch cho sự kiện sắp tới.", Timestamp: now.Add(-4 * time.Hour)},
				{ID: 202, SenderID: 1, Text: "Chào lớp trưởng, mình sẵn sàng. Mấy giờ và ở đâu vậy?", Timestamp: now.Add(-4*time.Hour + time.Minute)},
				{ID: 203, SenderID: 4, Text: "Mình cũng tham gia.", Timestamp: now.Add(-4*time.Hour + 2*time.Minute)},
				{ID: 204, SenderID: 2, Text: "Chúng ta họp online qua Google Meet lúc 8h tối nay nhé. Link mình sẽ gửi sau.", Timestamp: now.Add(-4*time.Hour + 3*time.Minute)},
				{ID: 205, SenderID: 3, Text: "Ok, mình sẽ chuẩn bị phần báo cáo tài liệu học tập.", Timestamp: now.Add(-4*time.Hour + 5*time.Minute)},
			},
		},
	}
}

func demoNotifications(now time.Time) []*models.Notification {
	return []*models.Notification{
		{ID: 1, Type: models.NotificationPost, Text: `Trần Thị Bình đã đăng một bài viết mới: "Thông báo lịch thi cuối kỳ".`, Timestamp: now.Add(-2 * time.Hour)},
		{ID: 2, Type: models.NotificationComment, Text: `Hoàng Văn Em đã bình luận về bài viết "Thông báo lịch thi cuối kỳ".`, Timestamp: now.Add(-1 * time.Hour)},
		{ID: 3, Type: models.NotificationVote, Text: `Lê Văn Cường đã upvote bài viết "Hoạt động tình nguyện Mùa Hè Xanh".`, Timestamp: now.Add(-5 * time.Hour)},
		{ID: 4, Type: models.NotificationSystem, Text: "Chào mừng bạn đến với ClassZone! Hãy khám phá các tính năng nhé.", Timestamp: now.Add(-24 * time.Hour), Read: true},
		{ID: 5, Type: models.NotificationComment, Text: `Vũ Thị Giang đã bình luận về bài viết "Thông báo lịch thi cuối kỳ".`, Timestamp: now.Add(-30 * time.Minute), Read: true},
	}
}
