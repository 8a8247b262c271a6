package pool

import "github.com/daniel/course-recommender/internal/types"

// courseCatalog is the curated course table used when no live candidate feed
// is configured. Entries are real courses with working URLs, keyed by topic.
var courseCatalog = map[string][]types.CandidateOpportunity{
	"programming": {
		{Title: "Complete Python Bootcamp", Platform: "Udemy", Provider: "Jose Portilla", URL: "https://www.udemy.com/course/complete-python-bootcamp/", Rating: 4.6, Price: "$19.99", Level: "Beginner", Skills: []string{"python", "programming"}},
		{Title: "Python for Everybody", Platform: "Coursera", Provider: "University of Michigan", URL: "https://www.coursera.org/specializations/python", Rating: 4.8, Price: "Free", Level: "Beginner", Skills: []string{"python", "programming"}},
		{Title: "Java Programming Masterclass", Platform: "Udemy", Provider: "Tim Buchalka", URL: "https://www.udemy.com/course/java-the-complete-java-developer-course/", Rating: 4.6, Price: "$19.99", Level: "Beginner", Skills: []string{"java", "programming"}},
		{Title: "CS50 Introduction to Computer Science", Platform: "edX", Provider: "Harvard University", URL: "https://www.edx.org/course/introduction-computer-science-harvardx-cs50x", Rating: 4.9, Price: "Free", Level: "Beginner", Skills: []string{"programming", "computer science"}},
	},
	"web development": {
		{Title: "The Complete Web Developer Bootcamp", Platform: "Udemy", Provider: "Angela Yu", URL: "https://www.udemy.com/course/the-complete-web-development-bootcamp/", Rating: 4.7, Price: "$19.99", Level: "Beginner", Skills: []string{"html", "css", "javascript", "web development"}},
		{Title: "Full-Stack Web Development with React", Platform: "Coursera", Provider: "Hong Kong University", URL: "https://www.coursera.org/specializations/full-stack-react", Rating: 4.7, Price: "Free", Level: "Intermediate", Skills: []string{"react", "web development"}},
		{Title: "HTML, CSS, and Javascript", Platform: "Coursera", Provider: "Johns Hopkins University", URL: "https://www.coursera.org/learn/html-css-javascript-for-web-developers", Rating: 4.7, Price: "Free", Level: "Beginner", Skills: []string{"html", "css", "javascript"}},
	},
	"machine learning": {
		{Title: "Machine Learning Specialization", Platform: "Coursera", Provider: "Stanford University", URL: "https://www.coursera.org/specializations/machine-learning-introduction", Rating: 4.9, Price: "Free", Level: "Intermediate", Skills: []string{"machine learning", "python"}},
		{Title: "Deep Learning Specialization", Platform: "Coursera", Provider: "DeepLearning.AI", URL: "https://www.coursera.org/specializations/deep-learning", Rating: 4.9, Price: "Free", Level: "Advanced", Skills: []string{"deep learning", "neural networks"}},
		{Title: "Machine Learning A-Z", Platform: "Udemy", Provider: "Kirill Eremenko", URL: "https://www.udemy.com/course/machinelearning/", Rating: 4.5, Price: "$19.99", Level: "Beginner", Skills: []string{"machine learning", "data science"}},
		{Title: "Machine Learning with Python", Platform: "Coursera", Provider: "IBM", URL: "https://www.coursera.org/learn/machine-learning-with-python", Rating: 4.7, Price: "Free", Level: "Intermediate", Skills: []string{"machine learning", "python"}},
	},
	"data science": {
		{Title: "Data Science Specialization", Platform: "Coursera", Provider: "Johns Hopkins University", URL: "https://www.coursera.org/specializations/jhu-data-science", Rating: 4.6, Price: "Free", Level: "Intermediate", Skills: []string{"data science", "r programming"}},
		{Title: "IBM Data Science Professional", Platform: "Coursera", Provider: "IBM", URL: "https://www.coursera.org/professional-certificates/ibm-data-science", Rating: 4.6, Price: "Free", Level: "Beginner", Skills: []string{"data science", "python"}},
		{Title: "Google Data Analytics", Platform: "Coursera", Provider: "Google", URL: "https://www.coursera.org/professional-certificates/google-data-analytics", Rating: 4.8, Price: "Free", Level: "Beginner", Skills: []string{"data analysis", "sql"}},
	},
	"algorithms": {
		{Title: "Algorithms Specialization", Platform: "Coursera", Provider: "Stanford University", URL: "https://www.coursera.org/specializations/algorithms", Rating: 4.8, Price: "Free", Level: "Advanced", Skills: []string{"algorithms"}},
		{Title: "Data Structures and Algorithms", Platform: "Coursera", Provider: "UC San Diego", URL: "https://www.coursera.org/specializations/data-structures-algorithms", Rating: 4.6, Price: "Free", Level: "Intermediate", Skills: []string{"data structures", "algorithms"}},
		{Title: "Algorithms Part I", Platform: "Coursera", Provider: "Princeton University", URL: "https://www.coursera.org/learn/algorithms-part1", Rating: 4.9, Price: "Free", Level: "Intermediate", Skills: []string{"algorithms", "java"}},
	},
	"cloud computing": {
		{Title: "AWS Fundamentals", Platform: "Coursera", Provider: "Amazon Web Services", URL: "https://www.coursera.org/specializations/aws-fundamentals", Rating: 4.7, Price: "Free", Level: "Beginner", Skills: []string{"aws", "cloud computing"}},
		{Title: "Google Cloud Platform Fundamentals", Platform: "Coursera", Provider: "Google Cloud", URL: "https://www.coursera.org/learn/gcp-fundamentals", Rating: 4.7, Price: "Free", Level: "Beginner", Skills: []string{"gcp", "cloud computing"}},
		{Title: "Microsoft Azure Fundamentals", Platform: "Coursera", Provider: "Microsoft", URL: "https://www.coursera.org/learn/microsoft-azure-fundamentals-az-900", Rating: 4.7, Price: "Free", Level: "Beginner", Skills: []string{"azure", "cloud computing"}},
	},
	"cybersecurity": {
		{Title: "Google Cybersecurity Certificate", Platform: "Coursera", Provider: "Google", URL: "https://www.coursera.org/professional-certificates/google-cybersecurity", Rating: 4.8, Price: "Free", Level: "Beginner", Skills: []string{"cybersecurity"}},
		{Title: "Cybersecurity Specialization", Platform: "Coursera", Provider: "University of Maryland", URL: "https://www.coursera.org/specializations/cyber-security", Rating: 4.7, Price: "Free", Level: "Intermediate", Skills: []string{"cybersecurity", "cryptography"}},
	},
	"mobile development": {
		{Title: "Android App Development", Platform: "Coursera", Provider: "Vanderbilt University", URL: "https://www.coursera.org/specializations/android-app-development", Rating: 4.5, Price: "Free", Level: "Intermediate", Skills: []string{"android", "mobile development"}},
		{Title: "iOS App Development with Swift", Platform: "Coursera", Provider: "University of Toronto", URL: "https://www.coursera.org/specializations/app-development", Rating: 4.6, Price: "Free", Level: "Intermediate", Skills: []string{"ios", "swift"}},
		{Title: "React Native Specialization", Platform: "Coursera", Provider: "Meta", URL: "https://www.coursera.org/specializations/meta-react-native", Rating: 4.7, Price: "Free", Level: "Intermediate", Skills: []string{"react native", "mobile development"}},
	},
	"database": {
		{Title: "Introduction to Databases", Platform: "Coursera", Provider: "Stanford University", URL: "https://www.coursera.org/learn/intro-to-databases", Rating: 4.6, Price: "Free", Level: "Beginner", Skills: []string{"sql", "database design"}},
		{Title: "SQL for Data Science", Platform: "Coursera", Provider: "UC Davis", URL: "https://www.coursera.org/learn/sql-for-data-science", Rating: 4.6, Price: "Free", Level: "Beginner", Skills: []string{"sql", "data science"}},
	},
	"devops": {
		{Title: "Docker and Kubernetes", Platform: "Udemy", Provider: "Stephen Grider", URL: "https://www.udemy.com/course/docker-and-kubernetes-the-complete-guide/", Rating: 4.6, Price: "$19.99", Level: "Intermediate", Skills: []string{"docker", "kubernetes", "devops"}},
		{Title: "Introduction to DevOps", Platform: "edX", Provider: "Linux Foundation", URL: "https://www.edx.org/course/introduction-to-devops", Rating: 4.5, Price: "Free", Level: "Beginner", Skills: []string{"devops", "ci/cd"}},
	},
	"ui ux design": {
		{Title: "Google UX Design Certificate", Platform: "Coursera", Provider: "Google", URL: "https://www.coursera.org/professional-certificates/google-ux-design", Rating: 4.8, Price: "Free", Level: "Beginner", Skills: []string{"ux design"}},
		{Title: "UX Design Bootcamp", Platform: "Udemy", Provider: "Vako Shvili", URL: "https://www.udemy.com/course/ui-ux-web-design-using-adobe-xd/", Rating: 4.5, Price: "$19.99", Level: "Beginner", Skills: []string{"ui design", "ux design"}},
	},
	"project management": {
		{Title: "Google Project Management", Platform: "Coursera", Provider: "Google", URL: "https://www.coursera.org/professional-certificates/google-project-management", Rating: 4.8, Price: "Free", Level: "Beginner", Skills: []string{"project management"}},
		{Title: "Agile Project Management", Platform: "Pluralsight", Provider: "Pluralsight", URL: "https://www.pluralsight.com/courses/agile-project-management", Rating: 4.6, Price: "Subscription", Level: "Intermediate", Skills: []string{"agile", "project management"}},
	},
	"game development": {
		{Title: "Unity Game Developer 2D", Platform: "Udemy", Provider: "GameDev.tv", URL: "https://www.udemy.com/course/unitycourse/", Rating: 4.7, Price: "$19.99", Level: "Beginner", Skills: []string{"unity", "game development"}},
		{Title: "Unreal Engine 5 Developer", Platform: "Udemy", Provider: "GameDev.tv", URL: "https://www.udemy.com/course/unrealcourse/", Rating: 4.6, Price: "$19.99", Level: "Intermediate", Skills: []string{"unreal engine", "game development"}},
	},
}

// certificationCatalog lists professional certifications with real
// application URLs, keyed by topic.
var certificationCatalog = map[string][]types.CandidateOpportunity{
	"it support": {
		{Title: "Google IT Support Professional Certificate", Platform: "Coursera", Provider: "Google", URL: "https://www.coursera.org/professional-certificates/google-it-support", Price: "$49/month", Level: "Beginner", Skills: []string{"it support", "troubleshooting", "networking", "operating systems"}, Description: "Prepare for a career in IT support. No experience required."},
	},
	"data science": {
		{Title: "Google Data Analytics Professional Certificate", Platform: "Coursera", Provider: "Google", URL: "https://www.coursera.org/professional-certificates/google-data-analytics", Price: "$49/month", Level: "Beginner", Skills: []string{"data analysis", "sql", "tableau", "r programming"}, Description: "Learn data analytics skills including data cleaning, analysis, and visualization."},
		{Title: "IBM Data Science Professional Certificate", Platform: "Coursera", Provider: "IBM", URL: "https://www.coursera.org/professional-certificates/ibm-data-science", Price: "$49/month", Level: "Intermediate", Skills: []string{"python", "sql", "machine learning", "data visualization"}, Description: "Master data science tools including Python, SQL, machine learning, and data visualization."},
	},
	"web development": {
		{Title: "Meta Front-End Developer Professional Certificate", Platform: "Coursera", Provider: "Meta", URL: "https://www.coursera.org/professional-certificates/meta-front-end-developer", Price: "$49/month", Level: "Intermediate", Skills: []string{"html", "css", "javascript", "react"}, Description: "Learn to create responsive websites using HTML, CSS, JavaScript and React."},
	},
	"cloud computing": {
		{Title: "AWS Certified Cloud Practitioner", Platform: "AWS", Provider: "Amazon Web Services", URL: "https://aws.amazon.com/certification/certified-cloud-practitioner/", Price: "$100", Level: "Beginner", Skills: []string{"aws", "cloud computing", "cloud security"}, Description: "Foundational understanding of AWS Cloud concepts, services, and terminology."},
		{Title: "Microsoft Azure Fundamentals (AZ-900)", Platform: "Microsoft Learn", Provider: "Microsoft", URL: "https://docs.microsoft.com/en-us/learn/certifications/azure-fundamentals/", Price: "$99", Level: "Beginner", Skills: []string{"azure", "cloud computing"}, Description: "Foundational knowledge of cloud services and Microsoft Azure."},
	},
	"machine learning": {
		{Title: "Google Machine Learning Crash Course", Platform: "Google", Provider: "Google", URL: "https://developers.google.com/machine-learning/crash-course", Price: "Free", Level: "Advanced", Skills: []string{"machine learning", "tensorflow", "python"}, Description: "Machine learning fundamentals and TensorFlow implementation."},
	},
}
