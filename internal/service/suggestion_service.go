package service

import (
	"metory-be/internal/constant"
	"metory-be/internal/dto"
)

type ISuggestionService interface {
	QuestionsForTopic(topic string) *dto.SuggestionResponse
	Topics() []string
}

// suggestionService serves the curated question catalog shown when a
// creator starts a new story. Static by design; stories keep their own
// copies of whatever questions were picked or edited.
type suggestionService struct {
	byTopic map[string][]string
	generic []string
	order   []string
}

func NewSuggestionService() ISuggestionService {
	return &suggestionService{
		order: []string{constant.TopicTravel, constant.TopicFood, constant.TopicSports, constant.TopicTech},
		byTopic: map[string][]string{
			constant.TopicTravel: {
				"Địa điểm du lịch nào khiến bạn ấn tượng nhất?",
				"Kỷ niệm đáng nhớ nhất trong chuyến đi gần đây?",
				"Món ăn địa phương nào bạn muốn thử lần nữa?",
				"Lời khuyên du lịch tốt nhất bạn từng nhận được?",
				"Điều gì khiến bạn cảm thấy hạnh phúc khi du lịch?",
			},
			constant.TopicFood: {
				"Món ăn yêu thích của bạn là gì?",
				"Công thức nấu ăn đặc biệt của gia đình bạn?",
				"Nhà hàng để lại ấn tượng sâu sắc nhất?",
				"Món ăn nào khiến bạn nhớ về tuổi thơ?",
				"Bí quyết nấu ăn ngon mà bạn muốn chia sẻ?",
			},
			constant.TopicSports: {
				"Môn thể thao bạn yêu thích nhất?",
				"Kỷ niệm thể thao đáng nhớ nhất của bạn?",
				"Vận động viên thần tượng của bạn?",
				"Lợi ích tuyệt vời nhất của việc chơi thể thao?",
				"Mục tiêu thể thao bạn muốn đạt được?",
			},
			constant.TopicTech: {
				"Công nghệ nào thay đổi cuộc sống bạn nhiều nhất?",
				"App hoặc thiết bị không thể thiếu của bạn?",
				"Xu hướng công nghệ bạn quan tâm nhất?",
				"Cách công nghệ giúp bạn kết nối với mọi người?",
				"Dự đoán của bạn về công nghệ trong tương lai?",
			},
		},
		generic: []string{
			"Điều gì khiến bạn đam mê về chủ đề này?",
			"Kinh nghiệm thú vị nhất của bạn?",
			"Lời khuyên bạn muốn chia sẻ?",
			"Điều gì bạn học được từ sở thích này?",
			"Mục tiêu tiếp theo của bạn?",
		},
	}
}

// QuestionsForTopic returns the curated set for a known topic, or the
// generic set for anything else.
func (s *suggestionService) QuestionsForTopic(topic string) *dto.SuggestionResponse {
	if questions, ok := s.byTopic[topic]; ok {
		return &dto.SuggestionResponse{Topic: topic, Questions: questions}
	}
	return &dto.SuggestionResponse{Topic: topic, Questions: s.generic, Fallback: true}
}

func (s *suggestionService) Topics() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
