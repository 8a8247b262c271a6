package taxonomy

// courseTable is the curated domain knowledge the default graph is built
// from: core CS courses, the skills and technologies they teach, their
// prerequisites, and the career paths they lead to.
var courseTable = map[string]CourseEntry{
	"data structures": {
		Skills:        []string{"algorithms", "problem solving", "programming", "complexity analysis"},
		Technologies:  []string{"python", "java", "c++"},
		Prerequisites: []string{"programming fundamentals"},
		LeadsTo:       []string{"algorithms", "system design", "competitive programming"},
		Difficulty:    "intermediate",
	},
	"algorithms": {
		Skills:        []string{"problem solving", "optimization", "complexity analysis", "dynamic programming"},
		Technologies:  []string{"python", "java", "c++"},
		Prerequisites: []string{"data structures"},
		LeadsTo:       []string{"machine learning", "competitive programming", "system design"},
		Difficulty:    "intermediate",
	},
	"machine learning": {
		Skills:        []string{"statistics", "linear algebra", "python", "data analysis", "model training"},
		Technologies:  []string{"python", "tensorflow", "pytorch", "scikit-learn", "pandas", "numpy"},
		Prerequisites: []string{"programming", "statistics", "linear algebra"},
		LeadsTo:       []string{"deep learning", "nlp", "computer vision", "data science"},
		Difficulty:    "advanced",
	},
	"deep learning": {
		Skills:        []string{"neural networks", "backpropagation", "optimization", "model architecture"},
		Technologies:  []string{"tensorflow", "pytorch", "keras", "cuda"},
		Prerequisites: []string{"machine learning", "linear algebra", "calculus"},
		LeadsTo:       []string{"computer vision", "nlp", "reinforcement learning"},
		Difficulty:    "advanced",
	},
	"web development": {
		Skills:        []string{"html", "css", "javascript", "responsive design", "api integration"},
		Technologies:  []string{"react", "vue", "angular", "node.js", "express", "mongodb"},
		Prerequisites: []string{"programming fundamentals"},
		LeadsTo:       []string{"full stack development", "frontend development", "backend development"},
		Difficulty:    "beginner",
	},
	"database systems": {
		Skills:        []string{"sql", "database design", "normalization", "query optimization"},
		Technologies:  []string{"postgresql", "mysql", "mongodb", "redis"},
		Prerequisites: []string{"programming fundamentals"},
		LeadsTo:       []string{"data engineering", "backend development", "data science"},
		Difficulty:    "intermediate",
	},
	"computer networks": {
		Skills:        []string{"networking protocols", "tcp/ip", "routing", "network security"},
		Technologies:  []string{"cisco", "wireshark", "linux"},
		Prerequisites: []string{"operating systems"},
		LeadsTo:       []string{"cybersecurity", "cloud computing", "devops"},
		Difficulty:    "intermediate",
	},
	"operating systems": {
		Skills:        []string{"process management", "memory management", "file systems", "concurrency"},
		Technologies:  []string{"linux", "unix", "c", "assembly"},
		Prerequisites: []string{"computer architecture", "programming"},
		LeadsTo:       []string{"system programming", "embedded systems", "devops"},
		Difficulty:    "intermediate",
	},
	"cybersecurity": {
		Skills:        []string{"network security", "cryptography", "ethical hacking", "penetration testing"},
		Technologies:  []string{"kali linux", "metasploit", "wireshark", "burp suite"},
		Prerequisites: []string{"computer networks", "programming"},
		LeadsTo:       []string{"security analyst", "penetration tester", "security engineer"},
		Difficulty:    "advanced",
	},
	"cloud computing": {
		Skills:        []string{"aws", "azure", "gcp", "containerization", "microservices"},
		Technologies:  []string{"docker", "kubernetes", "terraform", "jenkins"},
		Prerequisites: []string{"networking", "linux", "programming"},
		LeadsTo:       []string{"devops", "cloud architect", "site reliability engineer"},
		Difficulty:    "intermediate",
	},
	"mobile development": {
		Skills:        []string{"mobile ui", "app architecture", "api integration", "mobile testing"},
		Technologies:  []string{"react native", "flutter", "swift", "kotlin", "android"},
		Prerequisites: []string{"programming", "ui/ux basics"},
		LeadsTo:       []string{"mobile app developer", "cross-platform developer"},
		Difficulty:    "intermediate",
	},
	"data science": {
		Skills:        []string{"statistics", "data analysis", "visualization", "machine learning"},
		Technologies:  []string{"python", "r", "pandas", "matplotlib", "seaborn", "tableau"},
		Prerequisites: []string{"statistics", "programming"},
		LeadsTo:       []string{"data analyst", "ml engineer", "data engineer"},
		Difficulty:    "intermediate",
	},
	"artificial intelligence": {
		Skills:        []string{"machine learning", "neural networks", "optimization", "search algorithms"},
		Technologies:  []string{"python", "tensorflow", "pytorch", "opencv"},
		Prerequisites: []string{"machine learning", "algorithms"},
		LeadsTo:       []string{"ai researcher", "ml engineer", "ai specialist"},
		Difficulty:    "advanced",
	},
	"software engineering": {
		Skills:        []string{"design patterns", "testing", "version control", "agile", "ci/cd"},
		Technologies:  []string{"git", "jenkins", "docker", "jira"},
		Prerequisites: []string{"programming", "data structures"},
		LeadsTo:       []string{"software developer", "tech lead", "architect"},
		Difficulty:    "intermediate",
	},
	"computer vision": {
		Skills:        []string{"image processing", "object detection", "neural networks", "opencv"},
		Technologies:  []string{"python", "opencv", "tensorflow", "pytorch", "yolo"},
		Prerequisites: []string{"machine learning", "linear algebra"},
		LeadsTo:       []string{"cv engineer", "ai researcher", "robotics"},
		Difficulty:    "advanced",
	},
	"natural language processing": {
		Skills:        []string{"text processing", "transformers", "language models", "sentiment analysis"},
		Technologies:  []string{"python", "nltk", "spacy", "huggingface", "bert"},
		Prerequisites: []string{"machine learning", "deep learning"},
		LeadsTo:       []string{"nlp engineer", "ai researcher", "chatbot developer"},
		Difficulty:    "advanced",
	},
	"blockchain": {
		Skills:        []string{"cryptography", "distributed systems", "smart contracts", "consensus"},
		Technologies:  []string{"ethereum", "solidity", "web3", "hyperledger"},
		Prerequisites: []string{"programming", "cryptography"},
		LeadsTo:       []string{"blockchain developer", "smart contract developer"},
		Difficulty:    "advanced",
	},
	"devops": {
		Skills:        []string{"ci/cd", "automation", "monitoring", "infrastructure as code"},
		Technologies:  []string{"docker", "kubernetes", "jenkins", "ansible", "terraform"},
		Prerequisites: []string{"linux", "networking", "programming"},
		LeadsTo:       []string{"devops engineer", "sre", "cloud engineer"},
		Difficulty:    "intermediate",
	},
}
